package scatter

import (
	"bytes"
	"strings"
	"testing"
)

func TestMouseOverValidation(t *testing.T) {
	if _, err := MouseOver([]float64{1, 2}, []float64{1}, []string{"a", "b"}, Options{}); err == nil {
		t.Error("mismatched y length should fail")
	}
	if _, err := MouseOver([]float64{1}, []float64{1}, []string{}, Options{}); err == nil {
		t.Error("mismatched tips length should fail")
	}
	if _, err := MouseOver(nil, nil, nil, Options{}); err == nil {
		t.Error("no points should fail")
	}
}

func TestMouseOverRender(t *testing.T) {
	xs := []float64{0, 1.5, 2, 2.5}
	ys := []float64{0, 1.5, 2, 3}
	tips := []string{"Message 1", "Message 2", "Message 3", "Message 4"}

	sc, err := MouseOver(xs, ys, tips, Options{Title: "hover me"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = Render(&buf, sc); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, tip := range tips {
		if !strings.Contains(html, tip) {
			t.Errorf("page is missing tip %q", tip)
		}
	}
	if !strings.Contains(html, "tooltip") {
		t.Error("page has no tooltip configuration")
	}
	if !strings.Contains(html, "hover me") {
		t.Error("page is missing the title")
	}
}

func TestStatic(t *testing.T) {
	if _, err := Static([]float64{1}, []float64{1, 2}, []string{"a"}, Options{}); err == nil {
		t.Error("mismatched lengths should fail")
	}

	xs := []float64{0, 1, 2}
	ys := []float64{3, 1, 2}
	labels := []string{"a", "b", "c"}
	p, err := Static(xs, ys, labels, Options{Title: "static", XLabel: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "static" || p.X.Label.Text != "x" {
		t.Errorf("titles: %q, %q", p.Title.Text, p.X.Label.Text)
	}
	if p.Y.Max <= 3 {
		t.Errorf("no label headroom: Y.Max = %v", p.Y.Max)
	}
}
