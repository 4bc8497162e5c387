package core

import (
	"fmt"
	"strings"

	"doctorai/pkg"
)

// Framing selects how a recommendation is phrased.
type Framing int

const (
	// FramingCritical is used on the emergency path.
	FramingCritical Framing = iota
	// FramingElective is used when the user asked for a recommendation.
	FramingElective
)

const (
	criticalIntro = "\n\n👨‍⚕️ Since this might be critical, here are few nearest specialized doctors you can consult:\n"
	electiveIntro = "\n\n👨‍⚕️ Here are few nearest doctors specialized for your condition:\n"

	// CriticalNoDoctors is appended to the triage reply when the emergency
	// path finds no matching providers.
	CriticalNoDoctors = "\n\n⚠️ This might be a medical emergency, but no relevant doctors were found in the system."
	// ElectiveNoDoctors replaces the reply entirely on the elective path.
	ElectiveNoDoctors = "Sorry, no doctors found matching your condition."
)

// ComposeSuggestion renders the ranked matches as a numbered list behind a
// framing-specific introduction. Names get a "Dr. " prefix unless they
// already carry one; unknown distances render as "N/A". Returns the
// framing's fallback message when matches is empty.
func ComposeSuggestion(matches []pkg.Match, framing Framing) string {
	if len(matches) == 0 {
		if framing == FramingCritical {
			return CriticalNoDoctors
		}
		return ElectiveNoDoctors
	}

	var b strings.Builder
	if framing == FramingCritical {
		b.WriteString(criticalIntro)
	} else {
		b.WriteString(electiveIntro)
	}
	for i, m := range matches {
		name := m.Doctor.Name
		if !strings.HasPrefix(strings.ToLower(name), "dr.") {
			name = "Dr. " + name
		}
		hospital := m.Doctor.Hospital
		if hospital == "" {
			hospital = "N/A"
		}
		distance := "N/A"
		if m.DistanceKm != nil {
			distance = fmt.Sprintf("%.2f", *m.DistanceKm)
		}
		fmt.Fprintf(&b, "%d. %s - %s, %s (%s km away)\n", i+1, name, m.Doctor.Specialization, hospital, distance)
	}
	return b.String()
}
