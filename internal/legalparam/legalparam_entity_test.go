package legalparam_test

import (
	"testing"
	"time"

	"cortesec-admin/internal/legalparam"

	"github.com/stretchr/testify/assert"
)

func TestTotalPercent(t *testing.T) {
	assert.Equal(t, "12.500", legalparam.TotalPercent(4, 8.5))
	assert.Equal(t, "0.300", legalparam.TotalPercent(0.1, 0.2))
	assert.Equal(t, "0.000", legalparam.TotalPercent(0, 0))
	assert.Equal(t, "16.000", legalparam.TotalPercent(4, 12))
	assert.Equal(t, "1.045", legalparam.TotalPercent(0.522, 0.523))
}

func TestLegalParameter_VigenteEn(t *testing.T) {
	end := "2024-12-31"
	p := legalparam.LegalParameter{FechaInicioVigencia: "2024-01-01", FechaFinVigencia: &end, Activo: true}

	assert.False(t, p.VigenteEn(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.True(t, p.VigenteEn(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.VigenteEn(time.Date(2024, 12, 31, 18, 30, 0, 0, time.UTC)))
	assert.False(t, p.VigenteEn(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	open := legalparam.LegalParameter{FechaInicioVigencia: "2024-01-01", Activo: true}
	assert.True(t, open.VigenteEn(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)))

	inactive := legalparam.LegalParameter{FechaInicioVigencia: "2024-01-01", Activo: false}
	assert.False(t, inactive.VigenteEn(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}
