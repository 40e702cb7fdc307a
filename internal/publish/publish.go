// Package publish writes the daily results files consumed by the auto-type bookmarklet.
package publish

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beetools/bee/internal/puzzle"
	"github.com/beetools/bee/pkg/util"
	"github.com/beetools/bee/pkg/wordcodec"
)

const (
	LatestHintName    = "latest.txt"
	LatestEncodedName = "latest.encoded.txt"
)

// Options for GenerateDaily. Letters are the puzzle letters, required first.
type Options struct {
	Dir        string
	Date       time.Time
	Letters    string
	Dictionary []string
}

// Result lists what GenerateDaily wrote.
type Result struct {
	Date        string          `json:"date"`
	HintPath    string          `json:"hint_path"`
	EncodedPath string          `json:"encoded_path"`
	Payload     string          `json:"payload"`
	Solution    puzzle.Solution `json:"solution"`
}

// GenerateDaily solves the puzzle and writes <date>.txt (hint page) and
// <date>.encoded.txt (packed answer list) into opts.Dir.
func GenerateDaily(opts Options) (Result, error) {
	sol, err := puzzle.Solve(opts.Letters, opts.Dictionary)
	if err != nil {
		return Result{}, err
	}
	payload, err := wordcodec.Encode(sol.Words, sol.Letters)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode answers: %w", err)
	}

	date := opts.Date.Format(time.DateOnly)
	var page bytes.Buffer
	fmt.Fprintf(&page, "NYT Spelling Bee Daily Results\nDate: %s\nLetters: %s\n\n", date, opts.Letters)
	if err := puzzle.WriteHintPage(&page, sol); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	res := Result{
		Date:        date,
		HintPath:    filepath.Join(opts.Dir, date+".txt"),
		EncodedPath: filepath.Join(opts.Dir, date+".encoded.txt"),
		Payload:     payload,
		Solution:    sol,
	}
	if err := os.WriteFile(res.HintPath, page.Bytes(), 0o644); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(res.EncodedPath, []byte(payload), 0o644); err != nil {
		return Result{}, err
	}
	return res, nil
}

// UpdateLatest copies the dated files to latest.txt and latest.encoded.txt in dir.
func UpdateLatest(dir, hintPath, encodedPath string) (latestHint, latestEncoded string, err error) {
	latestHint = filepath.Join(dir, LatestHintName)
	latestEncoded = filepath.Join(dir, LatestEncodedName)
	if err := util.CopyFile(hintPath, latestHint); err != nil {
		return "", "", fmt.Errorf("failed to update %s: %w", LatestHintName, err)
	}
	if err := util.CopyFile(encodedPath, latestEncoded); err != nil {
		return "", "", fmt.Errorf("failed to update %s: %w", LatestEncodedName, err)
	}
	return latestHint, latestEncoded, nil
}
