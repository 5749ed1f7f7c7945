package ui_test

import (
	"testing"

	"github.com/ja-he/foldcal/internal/styling"
	"github.com/ja-he/foldcal/internal/ui"
)

type drawCall struct {
	x, y, w, h int
	text       string
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.calls = append(r.calls, drawCall{x, y, w, h, ""})
}

func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.calls = append(r.calls, drawCall{x, y, w, h, text})
}

func TestConstrainedRenderer(t *testing.T) {
	constraint := func() (x, y, w, h int) { return 10, 5, 20, 4 }

	testcases := []struct {
		name     string
		draw     func(cr *ui.CR)
		expected []drawCall
	}{
		{
			name:     "contained box",
			draw:     func(cr *ui.CR) { cr.DrawBox(12, 6, 3, 2, nil) },
			expected: []drawCall{{12, 6, 3, 2, ""}},
		},
		{
			name:     "box overlapping top left",
			draw:     func(cr *ui.CR) { cr.DrawBox(8, 3, 5, 5, nil) },
			expected: []drawCall{{10, 5, 3, 3, ""}},
		},
		{
			name:     "box overlapping bottom right",
			draw:     func(cr *ui.CR) { cr.DrawBox(28, 7, 5, 5, nil) },
			expected: []drawCall{{28, 7, 2, 2, ""}},
		},
		{
			name:     "box fully outside",
			draw:     func(cr *ui.CR) { cr.DrawBox(0, 0, 5, 5, nil) },
			expected: nil,
		},
		{
			name:     "text cut on the left",
			draw:     func(cr *ui.CR) { cr.DrawText(7, 6, 6, 1, nil, "Monday") },
			expected: []drawCall{{10, 6, 3, 1, "day"}},
		},
		{
			name:     "text cut entirely",
			draw:     func(cr *ui.CR) { cr.DrawText(4, 6, 8, 1, nil, "Mo") },
			expected: nil,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recordingRenderer{}
			cr := ui.NewConstrainedRenderer(r, constraint)
			tc.draw(cr)
			if len(r.calls) != len(tc.expected) {
				t.Fatalf("expected %d calls, got %d (%v)", len(tc.expected), len(r.calls), r.calls)
			}
			for i := range tc.expected {
				if r.calls[i] != tc.expected[i] {
					t.Errorf("expected %v, got %v", tc.expected[i], r.calls[i])
				}
			}
		})
	}
}
