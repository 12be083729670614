package autoformat

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
)

// Trigger is the input that runs detection.
const Trigger = " "

// Config configures a Detector.
type Config struct {
	// Rules in priority order. Nil means DefaultRules().
	Rules []Rule

	Logger *zap.Logger
}

// Detector evaluates rules against the text before the caret.
type Detector struct {
	rules  []Rule
	logger *zap.Logger
}

func New(cfg Config) *Detector {
	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		rules:  append([]Rule(nil), rules...),
		logger: logger,
	}
}

// Rules returns a copy of the detector's rules in priority order.
func (d *Detector) Rules() []Rule {
	return append([]Rule(nil), d.rules...)
}

// Detect returns the first rule matching text with the caret at offset caret.
func (d *Detector) Detect(text string, caret int) (Rule, Window, bool) {
	for _, r := range d.rules {
		if w, ok := r.Match(text, caret); ok {
			return r, w, true
		}
	}
	return Rule{}, Window{}, false
}

// HandleBeforeInput runs detection for input typed into s.
//
// Only the space trigger with a collapsed selection is considered. A
// selection whose start block is missing is consumed without any change.
// When a rule fires the returned state replaces s and the space is dropped.
func (d *Detector) HandleBeforeInput(s document.State, input string) (document.State, document.Result) {
	if input != Trigger {
		return s, document.NotHandled
	}

	sel := s.Selection()
	block, ok := s.Content().Block(sel.StartKey())
	if !ok {
		d.logger.Debug("autoformat: selection block missing", zap.String("key", sel.StartKey()))
		return s, document.Handled
	}
	if !sel.Collapsed() {
		return s, document.NotHandled
	}

	caret := sel.StartOffset()
	rule, w, ok := d.Detect(block.Text, caret)
	if !ok {
		return s, document.NotHandled
	}

	next, err := mutate(s, block.Key, w, rule)
	if err != nil {
		d.logger.Warn("autoformat: rule failed", zap.String("rule", rule.Name), zap.Error(err))
		return s, document.NotHandled
	}
	d.logger.Debug("autoformat: rule applied",
		zap.String("rule", rule.Name),
		zap.String("key", block.Key),
		zap.Int("start", w.Start),
		zap.Int("end", w.End),
	)
	return next, document.Handled
}

var defaultDetector = New(Config{})

// HandleBeforeInput runs the default rules.
func HandleBeforeInput(s document.State, input string) (document.State, document.Result) {
	return defaultDetector.HandleBeforeInput(s, input)
}
