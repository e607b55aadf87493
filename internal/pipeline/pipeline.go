package pipeline

import (
	"fmt"
	"time"

	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/classify"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/extract"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/model"
	"github.com/robinandreeklund-collab/CivicAI-sub011/internal/textproc"
)

// Pipeline orchestrates the complete analysis: preprocessing, the five
// classifiers, the optional lexical-statistics stage, and aggregation.
// It is stateless across calls and safe for concurrent use.
type Pipeline struct {
	preprocessor *textproc.Preprocessor
	tone         *classify.ToneClassifier
	bias         *classify.BiasDetector
	sentiment    *classify.SentimentAnalyzer
	ideology     *classify.IdeologyClassifier
	claims       *extract.ClaimExtractor
	enhanced     *textproc.EnhancedAnalyzer
}

// New creates a pipeline with all stages wired.
func New() *Pipeline {
	return &Pipeline{
		preprocessor: textproc.NewPreprocessor(),
		tone:         classify.NewToneClassifier(),
		bias:         classify.NewBiasDetector(),
		sentiment:    classify.NewSentimentAnalyzer(),
		ideology:     classify.NewIdeologyClassifier(),
		claims:       extract.NewClaimExtractor(),
		enhanced:     textproc.NewEnhancedAnalyzer(),
	}
}

// Analyze runs every stage over the text and assembles the transparency
// report. Stages run in a fixed order and each one is timed; a failing stage
// degrades to its neutral default with the error recorded in its provenance,
// so a single bad stage never loses the rest of the analysis.
func (p *Pipeline) Analyze(text, question string, opts model.AnalysisOptions) *model.PipelineReport {
	report := &model.PipelineReport{
		Question:   question,
		TextLength: len([]rune(text)),
	}

	// 1. Preprocessing
	report.Timeline = append(report.Timeline, timeStage("preprocessing",
		func() model.Provenance {
			report.Preprocess = p.preprocessor.Process(text)
			return report.Preprocess.Tokenization.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-preprocessor", "sentence-word-tokenization", err)
			report.Preprocess = model.NeutralPreprocess(prov)
			return prov
		}))

	// 2. Tone
	report.Timeline = append(report.Timeline, timeStage("tone_analysis",
		func() model.Provenance {
			report.Tone = p.tone.Classify(text)
			return report.Tone.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-tone", "keyword-scoring", err)
			report.Tone = model.NeutralTone(prov)
			return prov
		}))

	// 3. Bias
	report.Timeline = append(report.Timeline, timeStage("bias_detection",
		func() model.Provenance {
			report.Bias = p.bias.Detect(text)
			return report.Bias.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-bias", "five-dimension-lexicon-scan", err)
			report.Bias = model.NeutralBias(prov)
			return prov
		}))

	// 4. Sentiment
	report.Timeline = append(report.Timeline, timeStage("sentiment_analysis",
		func() model.Provenance {
			report.Sentiment = p.sentiment.Analyze(text)
			return report.Sentiment.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-sentiment", "lexicon-polarity-with-subdetectors", err)
			report.Sentiment = model.NeutralSentiment(prov)
			return prov
		}))

	// 5. Ideology
	report.Timeline = append(report.Timeline, timeStage("ideology_classification",
		func() model.Provenance {
			report.Ideology = p.ideology.Classify(text)
			return report.Ideology.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-ideology", "three-axis-lexicon-scoring", err)
			report.Ideology = model.NeutralIdeology(prov)
			return prov
		}))

	// 6. Fact claims
	report.Timeline = append(report.Timeline, timeStage("fact_extraction",
		func() model.Provenance {
			report.Claims = p.claims.Extract(text)
			return report.Claims.Provenance
		},
		func(err error) model.Provenance {
			prov := degradedProvenance("civicai-claims", "pattern-claim-extraction", err)
			report.Claims = model.NeutralClaims(prov)
			return prov
		}))

	// 7. Enhanced NLP (optional)
	if opts.IncludeEnhancedNLP {
		report.Timeline = append(report.Timeline, timeStage("enhanced_nlp",
			func() model.Provenance {
				enhanced := p.enhanced.Analyze(text)
				report.Enhanced = &enhanced
				return enhanced.Provenance
			},
			func(err error) model.Provenance {
				prov := degradedProvenance("civicai-enhanced-nlp", "lexical-statistics", err)
				report.Enhanced = &model.EnhancedNLP{Provenance: prov}
				return prov
			}))
	}

	// 8. Aggregate
	report.Insights = deriveInsights(report)
	report.Summary = summarize(report)
	report.GeneratedAt = time.Now().UTC()

	return report
}

// timeStage runs one stage with wall-clock timing. A panic inside the stage
// is converted into the degraded provenance returned by fallback; the
// timeline records the stage either way.
func timeStage(name string, run func() model.Provenance, fallback func(error) model.Provenance) model.TimelineStep {
	start := time.Now().UTC()
	prov := func() (prov model.Provenance) {
		defer func() {
			if r := recover(); r != nil {
				prov = fallback(fmt.Errorf("stage panic: %v", r))
			}
		}()
		return run()
	}()
	end := time.Now().UTC()

	return model.TimelineStep{
		Step:       name,
		StartTime:  start,
		EndTime:    end,
		DurationMS: end.Sub(start).Milliseconds(),
		Model:      prov.Model,
		Version:    prov.Version,
		Method:     prov.Method,
	}
}

func degradedProvenance(component, method string, err error) model.Provenance {
	prov := model.NewProvenance(component, "1.0.0", method)
	prov.Error = err.Error()
	return prov
}
