package rag

import "github.com/mwiater/bm25filter/internal/appconfig"

// OptionsFromConfig resolves the configured tunables over DefaultOptions.
// A nil config yields the defaults.
func OptionsFromConfig(cfg *appconfig.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	setInt(&opts.K, cfg.K)
	setInt(&opts.BypassThreshold, cfg.BypassThreshold)
	setInt(&opts.MinChunkWords, cfg.MinChunkWords)
	setInt(&opts.MaxChunkWords, cfg.MaxChunkWords)
	setInt(&opts.MinParagraphWords, cfg.MinParagraphWords)
	setInt(&opts.BoilerplateMaxWords, cfg.BoilerplateMaxWords)
	setInt(&opts.FallbackChars, cfg.FallbackChars)
	setFloat(&opts.K1, cfg.BM25K1)
	setFloat(&opts.B, cfg.BM25B)
	setFloat(&opts.LeadBonus, cfg.LeadBonus)
	return opts
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
