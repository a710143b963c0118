package request

import (
	"pgw_comprovantes/internal/domain/entities"
)

// ReceiptRequest is the integration-facing payload accepted by the receipt
// endpoint. It mirrors the payment processor's confirmation JSON; field
// names keep the processor's Portuguese tags.
type ReceiptRequest struct {
	Email string               `json:"email"`
	Data  PaymentBundleRequest `json:"data" binding:"required"`
}

type PaymentBundleRequest struct {
	DadosPagamento     PaymentDetailsRequest `json:"dados_pagamento" binding:"required"`
	HistoricoPagamento []HistoryEntryRequest `json:"historico_pagamento"`
}

type PaymentDetailsRequest struct {
	IDPagamento            string              `json:"id_pagamento"`
	CodTipoPessoa          string              `json:"cod_tipo_pessoa"`
	CPFCNPJFavorecido      string              `json:"cpf_cnpj_favorecido"`
	NomeFavorecido         string              `json:"nome_favorecido"`
	ValorPagamento         string              `json:"valor_pagamento"`
	NumeroLote             string              `json:"numero_lote"`
	NumeroLancamento       string              `json:"numero_lancamento"`
	ReferenciaEmpresa      string              `json:"referencia_empresa"`
	DataPagamento          string              `json:"data_pagamento"`
	Status                 string              `json:"status"`
	Comprovante            string              `json:"comprovante"`
	CodigoISBP             string              `json:"codigo_isbp"`
	TipoPagamento          string              `json:"tipo_pagamento"`
	TipoPagamentoDescricao string              `json:"tipo_pagamento_descricao"`
	DadosPixTransferencia  *PixTransferRequest `json:"dados_pix_transferencia"`
}

type PixTransferRequest struct {
	ChaveEnderecamento  string `json:"chave_enderecamento"`
	MensagemAoRecebedor string `json:"mensagem_ao_recebedor"`
}

type HistoryEntryRequest struct {
	Status       string `json:"status"`
	Data         string `json:"data"`
	NomeOperador string `json:"nome_operador"`
	CodOperador  string `json:"cod_operador"`
	CPFOperador  string `json:"cpf_operador"`
}

// ToEntity translates the wire payload into the domain record consumed by
// the use case. No validation happens here; the extractor owns the
// required-field contract.
func (r ReceiptRequest) ToEntity() entities.PaymentRecord {
	pg := r.Data.DadosPagamento

	details := entities.PaymentDetails{
		IDPagamento:            pg.IDPagamento,
		CodTipoPessoa:          pg.CodTipoPessoa,
		CPFCNPJFavorecido:      pg.CPFCNPJFavorecido,
		NomeFavorecido:         pg.NomeFavorecido,
		ValorPagamento:         pg.ValorPagamento,
		NumeroLote:             pg.NumeroLote,
		NumeroLancamento:       pg.NumeroLancamento,
		ReferenciaEmpresa:      pg.ReferenciaEmpresa,
		DataPagamento:          pg.DataPagamento,
		Status:                 pg.Status,
		Comprovante:            pg.Comprovante,
		CodigoISBP:             pg.CodigoISBP,
		TipoPagamento:          pg.TipoPagamento,
		TipoPagamentoDescricao: pg.TipoPagamentoDescricao,
	}
	if pix := pg.DadosPixTransferencia; pix != nil {
		details.DadosPixTransferencia = &entities.PixTransferDetails{
			ChaveEnderecamento:  pix.ChaveEnderecamento,
			MensagemAoRecebedor: pix.MensagemAoRecebedor,
		}
	}

	history := make([]entities.PaymentHistoryEntry, 0, len(r.Data.HistoricoPagamento))
	for _, h := range r.Data.HistoricoPagamento {
		history = append(history, entities.PaymentHistoryEntry{
			Status:       h.Status,
			Data:         h.Data,
			NomeOperador: h.NomeOperador,
			CodOperador:  h.CodOperador,
			CPFOperador:  h.CPFOperador,
		})
	}

	return entities.PaymentRecord{
		Email: r.Email,
		Data: entities.PaymentBundle{
			DadosPagamento:     details,
			HistoricoPagamento: history,
		},
	}
}
