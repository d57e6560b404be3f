package analyze

import (
	"reflect"
	"testing"
)

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), nil)

	text := "Researchers published findings on battery chemistry. " +
		"The study measured capacity across hundreds of charge cycles. " +
		"Results suggest a path toward cheaper grid storage."

	r1 := a.Analyze(text)
	r2 := a.Analyze(text)

	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", r1, r2)
	}
}

func TestAnalyzeRecordFields(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), nil)

	rec := a.Analyze("OpenAI researchers published a study on neural network training efficiency.")

	if rec.Signal < 0 || rec.Signal > 1 {
		t.Errorf("signal %v out of [0,1]", rec.Signal)
	}
	if rec.Sentiment < -1 || rec.Sentiment > 1 {
		t.Errorf("sentiment %v out of [-1,1]", rec.Sentiment)
	}
	if len(rec.Topics) == 0 {
		t.Error("record has no topics")
	}
	if rec.TLDR == "" {
		t.Error("record has no TL;DR")
	}
	if rec.ReadMinutes < 1 {
		t.Errorf("read minutes %d, want at least 1", rec.ReadMinutes)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), nil)
	rec := a.Analyze("")

	if rec.Signal != 0.0 {
		t.Errorf("empty text signal %v, want 0", rec.Signal)
	}
	if rec.TLDR != "" {
		t.Errorf("empty text TLDR %q, want empty", rec.TLDR)
	}
	if len(rec.Topics) != 1 || rec.Topics[0] != TopicUncategorized {
		t.Errorf("empty text topics %v, want [%s]", rec.Topics, TopicUncategorized)
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime("short text"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

type fixedScorer struct{ v float64 }

func (f fixedScorer) Score(string) float64 { return f.v }

func TestAnalyzePluggableSentiment(t *testing.T) {
	a := NewAnalyzer(DefaultConfig(), fixedScorer{v: 0.9})
	if got := a.Analyze("anything at all").Sentiment; got != 0.9 {
		t.Errorf("sentiment %v, want injected 0.9", got)
	}
}
