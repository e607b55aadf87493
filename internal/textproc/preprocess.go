package textproc

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
)

// Component identity stamped into preprocessing provenance.
const (
	preprocModel   = "civicai-preprocessor"
	preprocVersion = "1.0.0"
)

// Preprocessor runs the four preprocessing passes over a raw text. It holds
// only immutable lexicon state and is safe for concurrent use.
type Preprocessor struct {
	subjectivity *SubjectivityScanner
}

// NewPreprocessor creates a preprocessor with the compiled-in lexicons.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		subjectivity: NewSubjectivityScanner(),
	}
}

// Process tokenizes, scores subjectivity, scans loaded language, and measures
// noise. Empty input yields all-zero defaults, never an error.
func (p *Preprocessor) Process(text string) model.PreprocessReport {
	tokProv := model.NewProvenance(preprocModel, preprocVersion, "sentence-word-tokenization")
	subjProv := model.NewProvenance(preprocModel, preprocVersion, "indicator-lexicon-subjectivity")
	loadProv := model.NewProvenance(preprocModel, preprocVersion, "regex-loaded-language")
	noiseProv := model.NewProvenance(preprocModel, preprocVersion, "filler-word-noise")

	if strings.TrimSpace(text) == "" {
		return model.NeutralPreprocess(model.NewProvenance(preprocModel, preprocVersion, "empty-input"))
	}

	tokenization := Tokenize(text, tokProv)
	return model.PreprocessReport{
		Language:          detectLanguage(text),
		Tokenization:      tokenization,
		Subjectivity:      p.subjectivity.Scan(tokenization.Sentences, subjProv),
		LoadedExpressions: ScanLoadedExpressions(text, loadProv),
		Noise:             ReduceNoise(text, noiseProv),
	}
}

// detectLanguage returns the ISO 639-1 code of the detected language, or ""
// when detection is unreliable. Trigram detection is deterministic and needs
// no network.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
