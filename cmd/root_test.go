package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfileCommand(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "data.csv")
	content := "state,duration\nidle,1.5\nbusy,2.5\nidle,0.5\nbusy,3.5\nidle,1.0\n"
	if err := os.WriteFile(csv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "profile.png")

	rootCmd.SetArgs([]string{"profile", csv, "--out", out, "--bins", "5"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty output file")
	}
}

func TestScatterCommand(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "points.csv")
	content := "x,y,tip\n0,0,origin\n1.5,1.5,mid\n2.5,3,top\n"
	if err := os.WriteFile(csv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "scatter.html")

	rootCmd.SetArgs([]string{"scatter", csv, "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestPathCommandFlat(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "route.csv")
	content := "lon,lat\n-2.2,41.2\n-1.4,41.1\n-1.8,41.6\n-0.5,42.2\n"
	if err := os.WriteFile(csv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "route.png")

	// --no-map keeps the test off the network.
	rootCmd.SetArgs([]string{"path", csv, "--no-map", "--connect", "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}
