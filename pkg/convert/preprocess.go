package convert

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/atslint/pkg/fsutil"
)

// bulletPrefixes are the custom list markers rewritten to "- ".
//
//nolint:gochecknoglobals // Fixed marker list.
var bulletPrefixes = []string{"• ", "* "}

// PreprocessBullets rewrites lines that start with "• " or "* " (after
// leading whitespace) into "- " list items. Everything else, including line
// endings, is kept byte for byte.
func PreprocessBullets(content string) string {
	var builder strings.Builder
	builder.Grow(len(content))

	for _, line := range strings.SplitAfter(content, "\n") {
		builder.WriteString(rewriteBullet(line))
	}
	return builder.String()
}

func rewriteBullet(line string) string {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, prefix := range bulletPrefixes {
		if rest, ok := strings.CutPrefix(stripped, prefix); ok {
			indent := line[:len(line)-len(stripped)]
			return indent + "- " + rest
		}
	}
	return line
}

// PreprocessFile writes the bullet-normalized content of input to output.
func PreprocessFile(ctx context.Context, input, output string) error {
	data, _, err := fsutil.ReadFile(ctx, input)
	if err != nil {
		return fmt.Errorf("%w: preprocess %s: %w", ErrFileOperation, input, err)
	}

	if err := fsutil.WriteAtomic(ctx, output, []byte(PreprocessBullets(string(data))), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: preprocess %s: %w", ErrFileOperation, input, err)
	}
	return nil
}
