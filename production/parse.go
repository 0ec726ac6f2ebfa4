package production

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerRe = regexp.MustCompile(`Blueprint (\d+):`)
	robotRe  = regexp.MustCompile(`Each (\w+) robot costs ([^.]*)\.`)
	costRe   = regexp.MustCompile(`^(\d+) (\w+)$`)
)

// ParseBlueprint parses one blueprint record. Line breaks and runs of
// spaces inside the record are insignificant, so both the single-line and
// the indented multi-line layouts are accepted.
func ParseBlueprint(record string) (*Blueprint, error) {
	text := strings.Join(strings.Fields(record), " ")
	loc := headerRe.FindStringSubmatchIndex(text)
	if loc == nil || loc[0] != 0 {
		return nil, fmt.Errorf("%w: missing \"Blueprint <id>:\" header in %q", ErrMalformedBlueprint, text)
	}
	id, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return nil, fmt.Errorf("%w: blueprint id: %v", ErrMalformedBlueprint, err)
	}

	bp := &Blueprint{ID: id}
	body := text[loc[1]:]
	prev := 0
	for _, m := range robotRe.FindAllStringSubmatchIndex(body, -1) {
		if gap := strings.TrimSpace(body[prev:m[0]]); gap != "" {
			return nil, fmt.Errorf("%w: blueprint %d: unexpected %q", ErrMalformedBlueprint, id, gap)
		}
		prev = m[1]

		robot, err := ParseKind(body[m[2]:m[3]])
		if err != nil {
			return nil, fmt.Errorf("blueprint %d: %w", id, err)
		}
		if bp.Buildable[robot] {
			return nil, fmt.Errorf("%w: blueprint %d: %s robot", ErrDuplicateRobot, id, robot)
		}
		costs, err := parseCosts(body[m[4]:m[5]])
		if err != nil {
			return nil, fmt.Errorf("blueprint %d: %s robot: %w", id, robot, err)
		}
		bp.Costs[robot] = costs
		bp.Buildable[robot] = true
	}
	if prev == 0 {
		return nil, fmt.Errorf("%w: blueprint %d lists no robots", ErrMalformedBlueprint, id)
	}
	if rest := strings.TrimSpace(body[prev:]); rest != "" {
		return nil, fmt.Errorf("%w: blueprint %d: trailing %q", ErrMalformedBlueprint, id, rest)
	}

	return bp, nil
}

// parseCosts parses "<n> <resource> [and <n> <resource>]...".
func parseCosts(s string) (Amounts, error) {
	var costs Amounts
	for _, part := range strings.Split(s, " and ") {
		m := costRe.FindStringSubmatch(part)
		if m == nil {
			return costs, fmt.Errorf("%w: cost %q", ErrMalformedBlueprint, part)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return costs, fmt.Errorf("%w: cost %q: %v", ErrMalformedBlueprint, part, err)
		}
		k, err := ParseKind(m[2])
		if err != nil {
			return costs, err
		}
		costs[k] += n
	}

	return costs, nil
}

// ParseBlueprints reads every blueprint from r. Records start at each
// "Blueprint <id>:" header; anything before the first header must be blank.
func ParseBlueprints(r io.Reader) ([]*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("production: reading blueprints: %w", err)
	}
	text := string(data)
	starts := headerRe.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: no blueprint found", ErrMalformedBlueprint)
		}
		return nil, fmt.Errorf("%w: missing \"Blueprint <id>:\" header", ErrMalformedBlueprint)
	}
	if lead := strings.TrimSpace(text[:starts[0][0]]); lead != "" {
		return nil, fmt.Errorf("%w: unexpected %q before first blueprint", ErrMalformedBlueprint, lead)
	}

	out := make([]*Blueprint, 0, len(starts))
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		bp, err := ParseBlueprint(text[s[0]:end])
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}

	return out, nil
}
