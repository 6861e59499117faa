package workflow

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// line is one line of a definition file split into indentation, body and
// line ending so that a replacement keeps both untouched.
type line struct {
	indent string
	body   string
	eol    string
}

func (x line) String() string {
	return x.indent + x.body + x.eol
}

func splitLines(content string) []line {
	var lines []line
	for _, raw := range strings.SplitAfter(content, "\n") {
		if raw == "" {
			continue
		}
		var l line
		switch {
		case strings.HasSuffix(raw, "\r\n"):
			l.eol, raw = "\r\n", strings.TrimSuffix(raw, "\r\n")
		case strings.HasSuffix(raw, "\n"):
			l.eol, raw = "\n", strings.TrimSuffix(raw, "\n")
		}
		body := strings.TrimLeft(raw, " \t")
		l.indent = raw[:len(raw)-len(body)]
		l.body = body
		lines = append(lines, l)
	}
	return lines
}

func joinLines(lines []line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
	}
	return b.String()
}

// quoted reports whether body is `{keyword} "..."` with a non-empty value and
// nothing after the closing quote.
func quoted(body, keyword string) bool {
	rest, ok := strings.CutPrefix(body, keyword+` "`)
	return ok && len(rest) > 1 && strings.HasSuffix(rest, `"`)
}

func isURLLine(l line) bool {
	return quoted(l.body, "url")
}

// isHashLine matches `sha<bits> "..."`, e.g. sha256 or sha512.
func isHashLine(l line) bool {
	if len(l.body) < 6 || !strings.HasPrefix(l.body, "sha") {
		return false
	}
	bits := l.body[3:6]
	if _, err := strconv.Atoi(bits); err != nil {
		return false
	}
	return quoted(l.body, "sha"+bits)
}

func revisionOf(l line) (int, bool) {
	v, ok := strings.CutPrefix(l.body, "revision ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func splitHash(hash string) (algo, digest string, err error) {
	algo, digest, ok := strings.Cut(hash, ":")
	if !ok || algo == "" || digest == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "hash must be '<algorithm>:<hex>'", goerr.V("hash", hash))
	}
	return algo, digest, nil
}

// ReplaceArchive replaces the value of the first url line and the first hash
// line. All other lines are kept byte for byte. It fails with
// types.ErrNothingToCommit when either line is missing or when nothing changes.
func ReplaceArchive(content []byte, archive model.Archive) ([]byte, error) {
	algo, digest, err := splitHash(archive.Hash)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(content))
	urlDone, hashDone := false, false
	for i, l := range lines {
		switch {
		case !urlDone && isURLLine(l):
			lines[i].body = `url "` + archive.URL + `"`
			urlDone = true
		case !hashDone && isHashLine(l):
			lines[i].body = algo + ` "` + digest + `"`
			hashDone = true
		}
		if urlDone && hashDone {
			break
		}
	}

	if !urlDone || !hashDone {
		return nil, goerr.Wrap(types.ErrNothingToCommit, "url or hash line not found",
			goerr.V("url_found", urlDone),
			goerr.V("hash_found", hashDone),
		)
	}

	out := joinLines(lines)
	if out == string(content) {
		return nil, goerr.Wrap(types.ErrNothingToCommit, "url and hash are already up to date",
			goerr.V("url", archive.URL),
		)
	}
	return []byte(out), nil
}

// BumpRevision increments the first `revision N` line. Without one, it inserts
// `revision 1` right after the first hash line with the same indentation.
func BumpRevision(content []byte) ([]byte, error) {
	lines := splitLines(string(content))

	for i, l := range lines {
		if n, ok := revisionOf(l); ok {
			lines[i].body = "revision " + strconv.Itoa(n+1)
			return []byte(joinLines(lines)), nil
		}
	}

	for i, l := range lines {
		if !isHashLine(l) {
			continue
		}
		eol := l.eol
		if eol == "" {
			eol = "\n"
			lines[i].eol = eol
		}
		rev := line{indent: l.indent, body: "revision 1", eol: eol}
		lines = append(lines[:i+1], append([]line{rev}, lines[i+1:]...)...)
		return []byte(joinLines(lines)), nil
	}

	return nil, goerr.Wrap(types.ErrDependentPatchSkipped, "neither revision nor hash line found")
}
