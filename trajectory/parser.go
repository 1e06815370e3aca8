// Package trajectory ingests recorded motion-program files and generates
// parametric paths, turning both into joint-angle sequences ready for
// playback.
//
// Two line-oriented grammars are supported. A global-vars file declares the
// program's world and tool frames on lines prefixed "world1" and "tool1". A
// trajectory file records Cartesian waypoints on lines containing both
// "CARTPOS" and "x :=". In both grammars values are written as
// "KEY := NUMBER"; keys are matched case-insensitively and anything missing
// defaults to zero. Parsing is best-effort and never fails on unmatched
// lines.
package trajectory

import (
	"strconv"
	"strings"

	"github.com/Redamancy-wzh/6-3D/spatialmath"
)

// GlobalConfig holds the program-declared world frame and tool-center-point
// offset, both relative to the robot base.
type GlobalConfig struct {
	World spatialmath.Pose
	Tool  spatialmath.Pose
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

func isNumberByte(b byte) bool {
	return b >= '0' && b <= '9' || b == '.'
}

func skipBlank(line string, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// scanAssignments walks a line once and collects every "KEY := NUMBER"
// pair. Keys are lowercased; when a key repeats, the last occurrence wins.
// Anything that does not complete a pair is skipped.
func scanAssignments(line string) map[string]float64 {
	vals := make(map[string]float64)
	i := 0
	for i < len(line) {
		if !isIdentByte(line[i]) {
			i++
			continue
		}
		start := i
		for i < len(line) && isIdentByte(line[i]) {
			i++
		}
		key := strings.ToLower(line[start:i])

		j := skipBlank(line, i)
		if j+1 >= len(line) || line[j] != ':' || line[j+1] != '=' {
			continue
		}
		j = skipBlank(line, j+2)
		end := j
		if end < len(line) && (line[end] == '+' || line[end] == '-') {
			end++
		}
		for end < len(line) && isNumberByte(line[end]) {
			end++
		}
		v, err := strconv.ParseFloat(line[j:end], 64)
		if err == nil {
			vals[key] = v
		}
		i = end
	}
	return vals
}

// parsePoseLine reads the six pose keys out of a line, defaulting missing
// ones to zero.
func parsePoseLine(line string) spatialmath.Pose {
	vals := scanAssignments(line)
	return spatialmath.Pose{
		X: vals["x"], Y: vals["y"], Z: vals["z"],
		A: vals["a"], B: vals["b"], C: vals["c"],
	}
}

// ParseGlobalVars scans a global-vars file for the world and tool frame
// declarations. A file defining neither yields the all-zero default.
func ParseGlobalVars(text string) GlobalConfig {
	var global GlobalConfig
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.ToLower(strings.TrimLeft(line, " \t"))
		switch {
		case strings.HasPrefix(trimmed, "world1"):
			global.World = parsePoseLine(line)
		case strings.HasPrefix(trimmed, "tool1"):
			global.Tool = parsePoseLine(line)
		}
	}
	return global
}

// ParseWaypoints extracts the recorded Cartesian waypoints from a
// trajectory file, in file order. A line is a waypoint record iff it
// contains both the "CARTPOS" and "x :=" literals; every other line is
// ignored. Zero matching lines is not an error.
func ParseWaypoints(text string) []spatialmath.Pose {
	var waypoints []spatialmath.Pose
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "CARTPOS") || !strings.Contains(line, "x :=") {
			continue
		}
		waypoints = append(waypoints, parsePoseLine(line))
	}
	return waypoints
}
