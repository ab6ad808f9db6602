package assembler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ReadLines buffers the whole source so the parser can scan it twice.
func ReadLines(rd io.Reader) ([]string, error) {
	bfReader := bufio.NewReader(rd)
	var lines []string
	for {
		line, err := bfReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) > 0 {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// WriteWords writes one binary word per line.
func WriteWords(w io.Writer, words []Word) error {
	bfWriter := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bfWriter.WriteString(word.Code + "\n"); err != nil {
			return err
		}
	}
	return bfWriter.Flush()
}

// Listing lays out each word next to the source line that produced it.
func Listing(words []Word) string {
	bf := bytes.Buffer{}
	for _, word := range words {
		bf.WriteString(fmt.Sprintf("%5d  %s  %s\n", word.Line, word.Code, word.Source))
	}
	return bf.String()
}
