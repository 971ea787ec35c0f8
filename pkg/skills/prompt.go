package skills

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SkillWithLocation pairs validated properties with the manifest they came from
type SkillWithLocation struct {
	Properties *Properties
	// Location is the manifest path; omitted from the listing when empty
	Location string
}

// RenderPrompt renders skills without locations
func RenderPrompt(props []*Properties) string {
	skills := make([]SkillWithLocation, 0, len(props))
	for _, p := range props {
		skills = append(skills, SkillWithLocation{Properties: p})
	}
	return RenderListing(skills)
}

// RenderListing renders the <available_skills> block that advertises skills
// to an agent. Only name, description and location are included.
func RenderListing(skills []SkillWithLocation) string {
	lines := []string{"<available_skills>"}
	for _, skill := range skills {
		lines = append(lines,
			"<skill>",
			"<name>",
			escapeText(skill.Properties.Name),
			"</name>",
			"<description>",
			escapeText(skill.Properties.Description),
			"</description>",
		)
		if skill.Location != "" {
			lines = append(lines,
				"<location>",
				escapeText(skill.Location),
				"</location>",
			)
		}
		lines = append(lines, "</skill>")
	}
	lines = append(lines, "</available_skills>")
	return strings.Join(lines, "\n")
}

func escapeText(s string) string {
	return xmlEscaper.Replace(s)
}
