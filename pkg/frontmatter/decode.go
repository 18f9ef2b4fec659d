package frontmatter

import (
	"strings"
)

// IsCandidate reports whether content looks like it opens with a frontmatter
// block: trimmed, it starts with the delimiter and a second delimiter occurs
// after offset 3 of the untrimmed content.
func IsCandidate(content string) bool {
	if !strings.HasPrefix(Trim(content), Delimiter) {
		return false
	}
	if len(content) < len(Delimiter) {
		return false
	}
	return strings.Index(content[len(Delimiter):], Delimiter) > 0
}

// IsRuleFile reports whether name has extension ext and content has a
// frontmatter block. An empty ext means RuleExtension.
func IsRuleFile(name, content, ext string) bool {
	if name == "" || content == "" {
		return false
	}
	return HasRuleExtension(name, ext) && IsCandidate(content)
}

// HasRuleExtension reports whether name ends in ext, ignoring case. An empty
// ext means RuleExtension.
func HasRuleExtension(name, ext string) bool {
	if ext == "" {
		ext = RuleExtension
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}

// Decode splits raw file content into its frontmatter and body.
//
// When the content has fewer than two delimiters the body is the trimmed raw
// content. When the delimiters leave fewer than two non-empty segments the
// body is empty. Otherwise the second segment is the frontmatter and the
// remaining segments are joined back with " --- " to form the body.
func Decode(raw string) (fm Frontmatter, body string) {
	defer func() {
		if r := recover(); r != nil {
			fm, body = Default(), Trim(raw)
		}
	}()

	parts := strings.Split(Normalize(raw), Delimiter)
	if len(parts) < 3 {
		return Default(), Trim(raw)
	}

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := Trim(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) < 2 {
		return Default(), ""
	}

	var block string
	if len(segments) >= 3 {
		block = segments[1]
		body = strings.Join(segments[2:], bodyJoin)
	} else {
		block = segments[0]
		body = segments[1]
	}

	body = Trim(strings.TrimSuffix(body, `"`))

	return parseBlock(block), body
}

// parseBlock reads key: value lines. Unknown keys and lines without a colon
// are skipped.
func parseBlock(block string) Frontmatter {
	fm := Default()
	for _, line := range strings.Split(block, "\n") {
		if Trim(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = Trim(key), Trim(value)

		switch key {
		case keyDescription:
			fm.Description = value
		case keyGlobs:
			fm.Glob = value
		case keyAlwaysApply:
			if value == "true" {
				fm.Mode = ModeAlways
			} else {
				fm.Mode = ModeAgent
			}
		}
	}
	return fm
}
