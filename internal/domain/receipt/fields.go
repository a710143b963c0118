package receipt

import (
	"errors"
	"fmt"

	"pgw_comprovantes/internal/domain/entities"
)

var ErrMissingRequiredField = errors.New("missing required payment field")

// SettlementMoment holds the decomposed Efetivação timestamp. All four
// components are empty when the payment has no settlement event yet, which
// is a valid state: the composer falls back to a generic sentence.
type SettlementMoment struct {
	Day   string
	Month string
	Year  string
	Time  string
}

func (m SettlementMoment) Empty() bool {
	return m.Day == "" && m.Month == "" && m.Year == "" && m.Time == ""
}

// Fields is the flat, fully-defaulted field set consumed by the composer.
// After Extract succeeds, layout code never needs defensive lookups: the
// required fields are guaranteed non-empty and the optional ones default
// to "".
type Fields struct {
	NomeFavorecido         string
	CPFCNPJFavorecido      string
	ValorPagamento         string
	DataPagamento          string
	TipoPagamentoDescricao string

	ChavePix            string
	MensagemAoRecebedor string
	ReferenciaEmpresa   string
	Comprovante         string

	Settlement SettlementMoment
}

// Extract navigates the payment record and produces the receipt field set.
//
// An absent required field means the caller violated the payload contract
// and fails the whole invocation. A malformed settlement timestamp is
// likewise a payload defect. An absent settlement entry is not.
func Extract(rec entities.PaymentRecord) (Fields, error) {
	pg := rec.Data.DadosPagamento

	f := Fields{
		NomeFavorecido:         pg.NomeFavorecido,
		CPFCNPJFavorecido:      pg.CPFCNPJFavorecido,
		ValorPagamento:         pg.ValorPagamento,
		DataPagamento:          pg.DataPagamento,
		TipoPagamentoDescricao: pg.TipoPagamentoDescricao,
		ReferenciaEmpresa:      pg.ReferenciaEmpresa,
		Comprovante:            pg.Comprovante,
	}

	required := []struct {
		name  string
		value string
	}{
		{"nome_favorecido", f.NomeFavorecido},
		{"cpf_cnpj_favorecido", f.CPFCNPJFavorecido},
		{"valor_pagamento", f.ValorPagamento},
		{"data_pagamento", f.DataPagamento},
		{"tipo_pagamento_descricao", f.TipoPagamentoDescricao},
	}
	for _, r := range required {
		if r.value == "" {
			return Fields{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, r.name)
		}
	}

	if pix := pg.DadosPixTransferencia; pix != nil {
		f.ChavePix = pix.ChaveEnderecamento
		f.MensagemAoRecebedor = pix.MensagemAoRecebedor
	}

	// First Efetivação entry wins. The feed is not guaranteed time-ordered
	// and the upstream behavior is "first match", not "latest by time".
	for _, entry := range rec.Data.HistoricoPagamento {
		if entry.Status != entities.HistoryStatusEfetivacao {
			continue
		}
		day, month, year, clock, err := DecomposeTimestamp(entry.Data)
		if err != nil {
			return Fields{}, err
		}
		f.Settlement = SettlementMoment{Day: day, Month: month, Year: year, Time: clock}
		break
	}

	return f, nil
}
