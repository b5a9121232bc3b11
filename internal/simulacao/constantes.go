package simulacao

// Margens padrão dos cenários (5% a 30%)
var Margens = []float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.30}

const (
	AliquotaPIS    = 0.0065
	AliquotaCOFINS = 0.03
	AliquotaICMS   = 0.05

	// Lucro presumido: base trimestral = 32% do LAT
	PercentualPresuncao = 0.32
	AliquotaIRPJ        = 0.15
	AliquotaAdicional   = 0.10
	LimiteAdicional     = 60000.0
	AliquotaCSLL        = 0.09

	// MargemReferencia é o cenário usado para FAT/COMPRAS/ICMS nas tabelas (em %)
	MargemReferencia = 20
)
