package document

import (
	"reflect"
	"testing"

	"pgw_comprovantes/internal/domain/receipt"
)

func settledFields() receipt.Fields {
	return receipt.Fields{
		NomeFavorecido:         "POLICROM GALVANOTECNICA LTD...",
		CPFCNPJFavorecido:      "66943820000125",
		ValorPagamento:         "680.00",
		DataPagamento:          "2025-03-31",
		TipoPagamentoDescricao: "PIX Transferências",
		ChavePix:               "66943820000125",
		MensagemAoRecebedor:    "Pago por conta e ordem de SGI POWER TRANSMISSION DO BRASIL LTDA | CNPJ 18.299.985/0001-63",
		ReferenciaEmpresa:      "SGI POWER TRANSMISSI",
		Comprovante:            "00434176330016677700002100120250331146166898056683",
		Settlement:             receipt.SettlementMoment{Day: "31", Month: "março", Year: "2025", Time: "15:36:49"},
	}
}

// paymentSectionRows returns the rows between the DADOS DO PAGAMENTO header
// and the next non-row block.
func paymentSectionRows(t *testing.T, blocks []Block) []Block {
	t.Helper()
	var rows []Block
	inSection := false
	for _, blk := range blocks {
		if blk.Kind == BlockSectionHeader {
			inSection = blk.Text == "DADOS DO PAGAMENTO"
			continue
		}
		if !inSection {
			continue
		}
		if blk.Kind != BlockRow {
			break
		}
		rows = append(rows, blk)
	}
	return rows
}

func TestComposeReceipt_Order(t *testing.T) {
	blocks := ComposeReceipt(settledFields())

	wantKinds := []BlockKind{BlockLogo, BlockTitle, BlockSeparator, BlockSentence, BlockSectionHeader}
	for i, kind := range wantKinds {
		if blocks[i].Kind != kind {
			t.Fatalf("block %d: expected %s, got %s", i, kind, blocks[i].Kind)
		}
	}
	if blocks[1].Text != "COMPROVANTE DE TRANSFERÊNCIA" {
		t.Fatalf("unexpected title: %q", blocks[1].Text)
	}
	if blocks[len(blocks)-1].Kind != BlockDisclosure {
		t.Fatalf("expected trailing disclosure, got %s", blocks[len(blocks)-1].Kind)
	}

	var sections []string
	for _, blk := range blocks {
		if blk.Kind == BlockSectionHeader {
			sections = append(sections, blk.Text)
		}
	}
	want := []string{"DADOS DO PAGADOR", "DADOS DO RECEBEDOR", "DADOS DO PAGAMENTO"}
	if !reflect.DeepEqual(sections, want) {
		t.Fatalf("unexpected section order: %v", sections)
	}
}

func TestComposeReceipt_SettledSentence(t *testing.T) {
	blocks := ComposeReceipt(settledFields())

	var sentenceText string
	for _, blk := range blocks {
		if blk.Kind == BlockSentence {
			sentenceText = blk.Text
			break
		}
	}
	if sentenceText != "Transação efetuada em 31 de março, 2025 às 15:36:49 via Sispag" {
		t.Fatalf("unexpected sentence: %q", sentenceText)
	}

	rows := paymentSectionRows(t, blocks)
	if rows[0].Label != "Valor:" || rows[0].Value != "R$ 680.00" {
		t.Fatalf("unexpected amount row: %+v", rows[0])
	}
}

func TestComposeReceipt_FallbackSentence(t *testing.T) {
	f := settledFields()
	f.Settlement = receipt.SettlementMoment{}

	blocks := ComposeReceipt(f)
	for _, blk := range blocks {
		if blk.Kind == BlockSentence {
			if blk.Text != "Transação efetuada via Sispag" {
				t.Fatalf("unexpected fallback sentence: %q", blk.Text)
			}
			return
		}
	}
	t.Fatalf("sentence block not found")
}

func TestComposeReceipt_ConditionalRows(t *testing.T) {
	t.Run("all optional present gives 6 rows", func(t *testing.T) {
		rows := paymentSectionRows(t, ComposeReceipt(settledFields()))
		if len(rows) != 6 {
			t.Fatalf("expected 6 rows, got %d: %+v", len(rows), rows)
		}
		wantLabels := []string{"Valor:", "Data:", "Tipo:", "Pagador:", "Nº do comprovante:", "Mensagem:"}
		for i, label := range wantLabels {
			if rows[i].Label != label {
				t.Fatalf("row %d: expected label %q, got %q", i, label, rows[i].Label)
			}
		}
	})

	t.Run("all optional absent gives 3 rows", func(t *testing.T) {
		f := settledFields()
		f.ReferenciaEmpresa = ""
		f.Comprovante = ""
		f.MensagemAoRecebedor = ""

		rows := paymentSectionRows(t, ComposeReceipt(f))
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
		}
	})

	t.Run("partial optional keeps relative order", func(t *testing.T) {
		f := settledFields()
		f.ReferenciaEmpresa = ""

		rows := paymentSectionRows(t, ComposeReceipt(f))
		if len(rows) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(rows))
		}
		if rows[3].Label != "Nº do comprovante:" || rows[4].Label != "Mensagem:" {
			t.Fatalf("unexpected conditional order: %+v", rows[3:])
		}
	})
}

func TestComposeReceipt_PayerSection(t *testing.T) {
	blocks := ComposeReceipt(settledFields())

	var rows []Block
	inSection := false
	for _, blk := range blocks {
		if blk.Kind == BlockSectionHeader {
			inSection = blk.Text == "DADOS DO PAGADOR"
			continue
		}
		if inSection && blk.Kind == BlockRow {
			rows = append(rows, blk)
		} else if inSection && blk.Kind != BlockRow {
			break
		}
	}

	if len(rows) != 4 {
		t.Fatalf("expected 4 payer rows, got %d", len(rows))
	}
	if rows[0].Value != "PGW PAYMENTS INTERNET LTDA" || rows[1].Value != "33.392.629/0001-83" {
		t.Fatalf("unexpected payer rows: %+v", rows[:2])
	}
}

func TestComposeReceipt_Idempotent(t *testing.T) {
	f := settledFields()
	first := ComposeReceipt(f)
	second := ComposeReceipt(f)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical block sequences across renders")
	}
}
