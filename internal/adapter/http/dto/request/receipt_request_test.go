package request

import (
	"encoding/json"
	"testing"
)

func TestReceiptRequest_ToEntity(t *testing.T) {
	raw := `{
		"email": "arthur.b.dafonseca@gmail.com",
		"data": {
			"dados_pagamento": {
				"id_pagamento": "a3649c0c-372a-4aa7-b1ce-8f0629e1d2ec",
				"cpf_cnpj_favorecido": "66943820000125",
				"nome_favorecido": "POLICROM GALVANOTECNICA LTD...",
				"valor_pagamento": "680.00",
				"referencia_empresa": "SGI POWER TRANSMISSI",
				"data_pagamento": "2025-03-31",
				"comprovante": "00434176330016677700002100120250331146166898056683",
				"tipo_pagamento_descricao": "PIX Transferências",
				"dados_pix_transferencia": {
					"chave_enderecamento": "66943820000125",
					"mensagem_ao_recebedor": "Pago por conta e ordem"
				}
			},
			"historico_pagamento": [
				{"status": "Autorização", "data": "2025-03-31-09.21.04.750000", "nome_operador": "LUIZ CARLOS PASSAFARO GRANDE"},
				{"status": "Efetivação", "data": "2025-03-31-15.36.49.637000", "cod_operador": "0"}
			]
		}
	}`

	var req ReceiptRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := req.ToEntity()
	if rec.Email != "arthur.b.dafonseca@gmail.com" {
		t.Fatalf("unexpected email: %q", rec.Email)
	}
	pg := rec.Data.DadosPagamento
	if pg.ValorPagamento != "680.00" || pg.NomeFavorecido != "POLICROM GALVANOTECNICA LTD..." {
		t.Fatalf("unexpected payment details: %+v", pg)
	}
	if pg.DadosPixTransferencia == nil || pg.DadosPixTransferencia.ChaveEnderecamento != "66943820000125" {
		t.Fatalf("unexpected pix details: %+v", pg.DadosPixTransferencia)
	}
	if len(rec.Data.HistoricoPagamento) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(rec.Data.HistoricoPagamento))
	}
	if rec.Data.HistoricoPagamento[1].Status != "Efetivação" {
		t.Fatalf("unexpected history: %+v", rec.Data.HistoricoPagamento[1])
	}
}

func TestReceiptRequest_ToEntity_NilPix(t *testing.T) {
	req := ReceiptRequest{
		Data: PaymentBundleRequest{
			DadosPagamento: PaymentDetailsRequest{NomeFavorecido: "X"},
		},
	}

	rec := req.ToEntity()
	if rec.Data.DadosPagamento.DadosPixTransferencia != nil {
		t.Fatalf("expected nil pix details")
	}
	if rec.Data.HistoricoPagamento == nil || len(rec.Data.HistoricoPagamento) != 0 {
		t.Fatalf("expected empty history slice, got %+v", rec.Data.HistoricoPagamento)
	}
}
