package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// splitLine separates "Key: a,b,c" into the key and trimmed fields.
func splitLine(line string) (string, []string, bool) {
	key, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", nil, false
	}
	key = strings.TrimSpace(key)
	fields := strings.Split(rest, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return key, fields, true
}

func knownKey(key string) bool {
	switch key {
	case KeyPlayerSpawn, KeyKey, KeyDoor, KeyPlatform, KeyGhost:
		return true
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ConvertLine substitutes the ground placeholders in one line. Lines that are
// not recognised level entries come back unchanged.
func ConvertLine(line string, win Window) string {
	key, fields, ok := splitLine(line)
	if !ok || !knownKey(key) {
		return line
	}
	changed := false
	for i, f := range fields {
		switch f {
		case TokenGroundY:
			fields[i] = formatFloat(win.GroundY())
			changed = true
		case TokenGroundLength:
			fields[i] = formatFloat(win.GroundLength())
			changed = true
		}
	}
	if !changed {
		return line
	}
	return key + ": " + strings.Join(fields, ",")
}

// Convert runs ConvertLine over every line of r and writes the result to w.
func Convert(r io.Reader, w io.Writer, win Window) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		if _, err := bw.WriteString(ConvertLine(sc.Text(), win) + "\n"); err != nil {
			return fmt.Errorf("leveldata: write converted line: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("leveldata: read level: %w", err)
	}
	return bw.Flush()
}

// Parse reads a text level. Placeholders are substituted first; unknown or
// malformed lines are skipped. A level without a PlayerSpawn line yields
// ErrNoPlayerSpawn.
func Parse(r io.Reader, name string, win Window) (*Level, error) {
	lvl := &Level{Name: name}
	hasSpawn := false

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		key, f, ok := splitLine(ConvertLine(raw, win))
		if !ok {
			log.Debug("skipping level line", "level", name, "line", lineNo)
			continue
		}

		switch key {
		case KeyPlayerSpawn:
			if p, ok := parsePoint(f); ok {
				lvl.PlayerSpawn = p
				hasSpawn = true
				continue
			}
		case KeyKey:
			if p, ok := parsePoint(f); ok {
				lvl.Key = &p
				continue
			}
		case KeyDoor:
			if p, ok := parsePoint(f); ok {
				lvl.Door = &DoorSpec{X: p.X, Y: p.Y, Locked: parseFlag(f, 2, true)}
				continue
			}
		case KeyPlatform:
			if p, ok := parsePoint(f); ok {
				lvl.Platforms = append(lvl.Platforms, PlatformSpec{
					X:            p.X,
					Y:            p.Y,
					Length:       parseNumber(f, 2, DefaultPlatformLength),
					HasMonster:   parseFlag(f, 3, false),
					Disappearing: parseFlag(f, 4, false),
				})
				continue
			}
		case KeyGhost:
			if p, ok := parsePoint(f); ok {
				lvl.Ghosts = append(lvl.Ghosts, GhostSpec{
					X:      p.X,
					Y:      p.Y,
					Radius: parseNumber(f, 2, DefaultGhostRadius),
				})
				continue
			}
		}
		log.Debug("skipping level line", "level", name, "line", lineNo, "key", key)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", name, err)
	}
	if !hasSpawn {
		return nil, fmt.Errorf("%s: %w", name, ErrNoPlayerSpawn)
	}
	return lvl, nil
}

func parsePoint(f []string) (Point, bool) {
	if len(f) < 2 {
		return Point{}, false
	}
	x, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func parseNumber(f []string, i int, def float64) float64 {
	if i >= len(f) {
		return def
	}
	v, err := strconv.ParseFloat(f[i], 64)
	if err != nil {
		return def
	}
	return v
}

func parseFlag(f []string, i int, def bool) bool {
	if i >= len(f) {
		return def
	}
	switch f[i] {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return def
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Write encodes lvl in the text format with every value spelled out.
func Write(w io.Writer, lvl *Level) error {
	bw := bufio.NewWriter(w)
	line := func(key string, fields ...string) {
		fmt.Fprintf(bw, "%s: %s\n", key, strings.Join(fields, ","))
	}

	line(KeyPlayerSpawn, formatFloat(lvl.PlayerSpawn.X), formatFloat(lvl.PlayerSpawn.Y))
	if lvl.Key != nil {
		line(KeyKey, formatFloat(lvl.Key.X), formatFloat(lvl.Key.Y))
	}
	if lvl.Door != nil {
		line(KeyDoor, formatFloat(lvl.Door.X), formatFloat(lvl.Door.Y), formatFlag(lvl.Door.Locked))
	}
	for _, p := range lvl.Platforms {
		line(KeyPlatform, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Length),
			formatFlag(p.HasMonster), formatFlag(p.Disappearing))
	}
	for _, g := range lvl.Ghosts {
		line(KeyGhost, formatFloat(g.X), formatFloat(g.Y), formatFloat(g.Radius))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("leveldata: write %s: %w", lvl.Name, err)
	}
	return nil
}
