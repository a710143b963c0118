package document

import (
	"fmt"

	"pgw_comprovantes/internal/domain/entities"
	"pgw_comprovantes/internal/domain/receipt"
)

const receiptTitle = "COMPROVANTE DE TRANSFERÊNCIA"

// ComposeReceipt turns the extracted field set into the ordered block
// sequence of the printed receipt. The transform is pure: same fields in,
// same blocks out, so two renders of one record are identical.
//
// The row order inside each section is fixed; conditional rows are appended
// in a fixed relative order (referência, comprovante, mensagem) and only
// when non-empty.
func ComposeReceipt(f receipt.Fields) []Block {
	blocks := []Block{
		logo(),
		title(receiptTitle),
		separator(),
		sentence(SettlementSentence(f.Settlement)),

		section("DADOS DO PAGADOR"),
		row("Nome:", entities.PayerName),
		row("CNPJ:", entities.PayerCNPJ),
		row("Agência:", entities.PayerAgencia),
		row("Conta:", entities.PayerConta),
		separator(),

		section("DADOS DO RECEBEDOR"),
		row("Nome:", f.NomeFavorecido),
		row("Chave PIX:", f.ChavePix),
		row("CPF/CNPJ:", f.CPFCNPJFavorecido),
		separator(),

		section("DADOS DO PAGAMENTO"),
		row("Valor:", "R$ "+f.ValorPagamento),
		row("Data:", f.DataPagamento),
		row("Tipo:", f.TipoPagamentoDescricao),
	}

	if f.ReferenciaEmpresa != "" {
		blocks = append(blocks, row("Pagador:", f.ReferenciaEmpresa))
	}
	if f.Comprovante != "" {
		blocks = append(blocks, row("Nº do comprovante:", f.Comprovante))
	}
	if f.MensagemAoRecebedor != "" {
		blocks = append(blocks, row("Mensagem:", f.MensagemAoRecebedor))
	}

	return append(blocks, disclosure(entities.DisclosureSentence))
}

// SettlementSentence renders the transaction-summary line. A payment with
// no Efetivação event yet gets the generic form.
func SettlementSentence(s receipt.SettlementMoment) string {
	if s.Day != "" && s.Month != "" && s.Year != "" && s.Time != "" {
		return fmt.Sprintf("Transação efetuada em %s de %s, %s às %s via Sispag", s.Day, s.Month, s.Year, s.Time)
	}
	return "Transação efetuada via Sispag"
}
