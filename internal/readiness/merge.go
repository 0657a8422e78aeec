package readiness

import "sort"

// MergedCriterion is a criterion in a school's effective view, annotated with
// the school it came from. Only criteria owned by the selected school are
// editable there; inherited ones must be edited from their origin school.
type MergedCriterion struct {
	Criterion
	Source   string `json:"source"`
	Editable bool   `json:"editable"`
}

// Merge builds the effective criteria list for the selected school from all
// known configs. Precedence by criterion id: the school's own criteria, then
// criteria shared to it by other schools via targetSchools, then Common.
//
// When the selected school is Common itself, the view is instead the union of
// criteria native to Common and criteria any school explicitly shared.
//
// The result is deterministic and independent of the order configs arrive in:
// configs are indexed by school before the union is built.
func Merge(selected string, configs []Config) []MergedCriterion {
	bySchool := make(map[string]Config, len(configs))
	for _, cfg := range configs {
		bySchool[cfg.School] = cfg
	}

	if selected == SchoolCommon {
		return mergeCommonView(bySchool)
	}

	seen := make(map[string]bool)
	var out []MergedCriterion

	for _, criterion := range bySchool[selected].Criteria {
		if seen[criterion.ID] {
			continue
		}
		seen[criterion.ID] = true
		out = append(out, MergedCriterion{Criterion: criterion, Source: selected, Editable: true})
	}

	for _, school := range sortedSchools(bySchool) {
		if school == selected || school == SchoolCommon {
			continue
		}
		for _, criterion := range bySchool[school].Criteria {
			if seen[criterion.ID] || !targets(criterion, selected) {
				continue
			}
			seen[criterion.ID] = true
			out = append(out, MergedCriterion{Criterion: criterion, Source: school})
		}
	}

	for _, criterion := range bySchool[SchoolCommon].Criteria {
		if seen[criterion.ID] {
			continue
		}
		seen[criterion.ID] = true
		out = append(out, MergedCriterion{Criterion: criterion, Source: SchoolCommon})
	}

	return out
}

// mergeCommonView unions Common's native criteria with every criterion a
// school explicitly shared (non-empty targetSchools).
func mergeCommonView(bySchool map[string]Config) []MergedCriterion {
	seen := make(map[string]bool)
	var out []MergedCriterion

	for _, criterion := range bySchool[SchoolCommon].Criteria {
		if seen[criterion.ID] {
			continue
		}
		seen[criterion.ID] = true
		out = append(out, MergedCriterion{Criterion: criterion, Source: SchoolCommon, Editable: true})
	}

	for _, school := range sortedSchools(bySchool) {
		if school == SchoolCommon {
			continue
		}
		for _, criterion := range bySchool[school].Criteria {
			if seen[criterion.ID] || len(criterion.TargetSchools) == 0 {
				continue
			}
			seen[criterion.ID] = true
			out = append(out, MergedCriterion{Criterion: criterion, Source: school})
		}
	}

	return out
}

func targets(criterion Criterion, school string) bool {
	for _, target := range criterion.TargetSchools {
		if target == school {
			return true
		}
	}
	return false
}

func sortedSchools(bySchool map[string]Config) []string {
	schools := make([]string, 0, len(bySchool))
	for school := range bySchool {
		schools = append(schools, school)
	}
	sort.Strings(schools)
	return schools
}
