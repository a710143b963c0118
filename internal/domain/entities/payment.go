package entities

// PaymentRecord is the inbound payment-confirmation record.
//
// It mirrors the JSON emitted by the payment processor after a Sispag
// execution. The record is consumed once per request and never persisted.
//
// Payload notes:
//   - Field names keep the processor's Portuguese JSON tags.
//   - DadosPixTransferencia is absent for non-PIX payment types, so it is a
//     pointer; every read must tolerate nil.

type PaymentRecord struct {
	Email string        `json:"email"`
	Data  PaymentBundle `json:"data"`
}

type PaymentBundle struct {
	DadosPagamento     PaymentDetails        `json:"dados_pagamento"`
	HistoricoPagamento []PaymentHistoryEntry `json:"historico_pagamento"`
}

// PaymentDetails is the executed-payment sub-record.
//
// Required by the payload contract: NomeFavorecido, CPFCNPJFavorecido,
// ValorPagamento, DataPagamento, TipoPagamentoDescricao. The remaining
// fields are optional and default to empty at extraction time.
type PaymentDetails struct {
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
	DadosPixTransferencia  *PixTransferDetails `json:"dados_pix_transferencia,omitempty"`
}

// PixTransferDetails carries the PIX addressing key and the free-text
// message shown to the receiver.
type PixTransferDetails struct {
	ChaveEnderecamento  string `json:"chave_enderecamento"`
	MensagemAoRecebedor string `json:"mensagem_ao_recebedor"`
}

// HistoryStatusEfetivacao marks the settlement event in the payment
// lifecycle. Entries are not guaranteed to be time-ordered.
const HistoryStatusEfetivacao = "Efetivação"

// PaymentHistoryEntry is one lifecycle event of the payment.
//
// Data uses the processor's fixed-width form YYYY-MM-DD-HH.MM.SS.ffffff.
type PaymentHistoryEntry struct {
	Status       string `json:"status"`
	Data         string `json:"data"`
	NomeOperador string `json:"nome_operador,omitempty"`
	CodOperador  string `json:"cod_operador,omitempty"`
	CPFOperador  string `json:"cpf_operador,omitempty"`
}
