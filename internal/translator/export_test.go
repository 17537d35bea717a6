package translator

var (
	NormalizeLibreTranslate = normalizeLibreTranslate
	NormalizeMyMemory       = normalizeMyMemory
	NormalizeLingva         = normalizeLingva
	NormalizeConfidence     = normalizeConfidence
)
