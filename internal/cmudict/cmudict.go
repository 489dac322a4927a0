// Package cmudict reads the CMU Pronouncing Dictionary and rewrites it as
// lexicon source lines ("spelling<TAB>pron, pron").
//
// Both the classic upper-case release ("HOUSE(2)  HH AW1 Z", ";;;" comments)
// and the lower-case cmudict.dict layout ("house(2) HH AW1 Z # note") are read.
package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexitron/internal/domain"
)

const maxLineSize = 1 << 20

// errSkipLine signals that a line carries no pronunciation.
var errSkipLine = errors.New("skip line")

// arpabetIPA maps ARPAbet phonemes (without stress markers) to IPA.
var arpabetIPA = map[string]string{
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ", "AY": "aɪ",
	"EH": "ɛ", "ER": "ɝ", "EY": "eɪ", "IH": "ɪ", "IY": "i", "OW": "oʊ",
	"OY": "ɔɪ", "UH": "ʊ", "UW": "u",
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð", "F": "f", "G": "ɡ",
	"HH": "h", "JH": "dʒ", "K": "k", "L": "l", "M": "m", "N": "n",
	"NG": "ŋ", "P": "p", "R": "ɹ", "S": "s", "SH": "ʃ", "T": "t",
	"TH": "θ", "V": "v", "W": "w", "Y": "j", "Z": "z", "ZH": "ʒ",
}

// Options controls how pronunciations are written.
type Options struct {
	// IPA writes "/haʊs/" instead of the ARPAbet "HH AW1 S".
	IPA    bool
	Logger *slog.Logger
}

// Stats holds converter statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	SkippedLines int
	UniqueWords  int
}

// Parse reads a CMU dictionary and returns one entry per word in first-seen
// order, with its variants as pronunciations in file order.
func Parse(r io.Reader, opts Options) ([]domain.Entry, Stats, error) {
	var (
		stats   Stats
		entries []domain.Entry
		pos     = make(map[string]int)
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.TotalLines++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		word, phonemes, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if isComment(line) {
				stats.CommentLines++
			} else if strings.TrimSpace(line) != "" {
				stats.SkippedLines++
			}
			continue
		}

		stats.ParsedLines++
		pron := strings.Join(phonemes, " ")
		if opts.IPA {
			pron = phonemesToIPA(phonemes)
		}

		i, ok := pos[word]
		if !ok {
			i = len(entries)
			pos[word] = i
			entries = append(entries, domain.Entry{Spelling: word})
		}
		entries[i].Pronunciations = append(entries[i].Pronunciations, pron)
	}

	// Returned bare: callers reading through NewReader add their own context.
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats.UniqueWords = len(entries)
	return entries, stats, nil
}

// Convert writes the dictionary read from r to w as lexicon source lines.
func Convert(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	entries, stats, err := Parse(r, opts)
	if err != nil {
		return Stats{}, err
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Spelling, strings.Join(e.Pronunciations, domain.PronunciationSeparator)); err != nil {
			return Stats{}, fmt.Errorf("write entry: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("write entry: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("cmudict converted",
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("parsed_lines", stats.ParsedLines),
		slog.Int("skipped_lines", stats.SkippedLines),
		slog.Int("unique_words", stats.UniqueWords),
	)
	return stats, nil
}

// NewReader returns a reader yielding the lexicon source lines of the CMU
// dictionary read from r. Read and conversion errors surface from Read.
// Closing the reader early stops the conversion.
func NewReader(r io.Reader, opts Options) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		_, err := Convert(r, pw, opts)
		pw.CloseWithError(err)
	}()
	return pr
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#")
}

// parseLine splits a dictionary line into its word, without the variant
// marker, and its ARPAbet phonemes.
func parseLine(line string) (string, []string, error) {
	if isComment(line) {
		return "", nil, errSkipLine
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, errSkipLine
	}

	word := stripVariant(fields[0])
	if word == "" {
		return "", nil, errSkipLine
	}
	return word, fields[1:], nil
}

// stripVariant drops the alternate-pronunciation marker from a raw word:
// "HOUSE(2)" becomes "HOUSE". A malformed marker is kept as part of the word.
func stripVariant(raw string) string {
	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return raw
	}
	if n, err := strconv.Atoi(raw[open+1 : len(raw)-1]); err != nil || n < 1 {
		return raw
	}
	return raw[:open]
}

// stripStress removes the trailing stress marker (0, 1, 2) from a phoneme.
func stripStress(phoneme string) string {
	if n := len(phoneme); n > 0 && phoneme[n-1] >= '0' && phoneme[n-1] <= '2' {
		return phoneme[:n-1]
	}
	return phoneme
}

// phonemesToIPA converts ARPAbet phonemes to a slash-wrapped IPA string.
// Unknown phonemes are dropped.
func phonemesToIPA(phonemes []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range phonemes {
		b.WriteString(arpabetIPA[stripStress(p)])
	}
	b.WriteByte('/')
	return b.String()
}
