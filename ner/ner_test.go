package ner

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestHeuristicAnalyze(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "two word name",
			in:   "Merve Yılmaz dün aradı",
			want: []string{"Merve Yılmaz"},
		},
		{
			name: "single name mid sentence",
			in:   "dün Merve geldi",
			want: []string{"Merve"},
		},
		{
			name: "sentence initial capital dropped",
			in:   "Dün yağmur yağdı",
			want: nil,
		},
		{
			name: "sentence initial acronym kept",
			in:   "NASA yeni görev duyurdu",
			want: []string{"NASA"},
		},
		{
			name: "initial multi word run kept",
			in:   "Merve Yılmaz geldi",
			want: []string{"Merve Yılmaz"},
		},
		{
			name: "comma breaks a run",
			in:   "Merve, Ali ve Ayşe geldi",
			want: []string{"Ali", "Ayşe"},
		},
		{
			name: "dotted capital i",
			in:   "dün İstanbul çok güzeldi",
			want: []string{"İstanbul"},
		},
		{
			name: "dotted capital i sentence initial",
			in:   "İstanbul dün güzeldi",
			want: nil,
		},
		{
			name: "apostrophe suffix stays in span",
			in:   "yarın Ankara'ya gidiyoruz",
			want: []string{"Ankara'ya"},
		},
		{
			name: "no capitals",
			in:   "bugün hava çok güzel",
			want: nil,
		},
		{
			name: "empty sentence",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spans, err := Heuristic{}.Analyze(tt.in)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if len(spans) != len(tt.want) {
				t.Fatalf("got %v, want texts %q", spans, tt.want)
			}
			for i, sp := range spans {
				if sp.Text != tt.want[i] {
					t.Errorf("span %d: got %q, want %q", i, sp.Text, tt.want[i])
				}
				if got := tt.in[sp.Start:sp.End]; got != sp.Text {
					t.Errorf("span %d: offsets [%d:%d] select %q, not %q", i, sp.Start, sp.End, got, sp.Text)
				}
			}
		})
	}
}

func TestHeuristicEnsureReady(t *testing.T) {
	t.Parallel()
	h := Heuristic{}
	if err := h.EnsureReady(); err != nil {
		t.Fatalf("EnsureReady: %v", err)
	}
	if err := h.EnsureReady(); err != nil {
		t.Fatalf("EnsureReady second call: %v", err)
	}
}

func TestSpanString(t *testing.T) {
	t.Parallel()
	s := Span{Text: "Merve", Start: 4, End: 9}
	if got, want := s.String(), `"Merve"[4:9]`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// overlapProbe fails its counter check if two calls ever run at once.
type overlapProbe struct {
	active   atomic.Int32
	overlaps atomic.Int32
}

func (p *overlapProbe) EnsureReady() error { return nil }

func (p *overlapProbe) Analyze(sentence string) ([]Span, error) {
	if p.active.Add(1) != 1 {
		p.overlaps.Add(1)
	}
	time.Sleep(50 * time.Microsecond)
	p.active.Add(-1)
	return []Span{{Text: sentence, Start: 0, End: len(sentence)}}, nil
}

func TestSerialize(t *testing.T) {
	t.Parallel()
	probe := &overlapProbe{}
	p := Serialize(probe)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				spans, err := p.Analyze("Merve geldi")
				if err != nil || len(spans) != 1 {
					t.Errorf("Analyze = (%v, %v)", spans, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if n := probe.overlaps.Load(); n != 0 {
		t.Errorf("%d overlapping calls reached the wrapped provider", n)
	}
}
