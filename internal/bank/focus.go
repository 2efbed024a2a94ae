package bank

import "github.com/stateanchor/stateanchor/internal/model"

// rotate returns items rotated so that index seed%len comes first. The daily
// rotation is the only source of variation; no randomness anywhere.
func rotate[T any](items []T, seed int) []T {
	if len(items) == 0 {
		return nil
	}
	idx := seed % len(items)
	out := make([]T, 0, len(items))
	out = append(out, items[idx:]...)
	out = append(out, items[:idx]...)
	return out
}

// ChooseFocus derives the day's focus: three distinct categories spread across
// the rotation (offsets 0, 7, 14) and one comparison profile.
func ChooseFocus(dayOfYear int) model.Focus {
	n := len(Categories)
	i := dayOfYear % n
	j := (dayOfYear + 7) % n
	k := (dayOfYear + 14) % n

	// Nudge indices apart so the three categories stay unique even if the
	// offsets collide modulo a small list.
	if j == i {
		j = (j + 1) % n
	}
	if k == i || k == j {
		k = (k + 1) % n
		if k == i || k == j {
			k = (k + 1) % n
		}
	}

	profile := ComparisonProfiles[dayOfYear%len(ComparisonProfiles)]
	return model.Focus{
		Categories:      []string{Categories[i], Categories[j], Categories[k]},
		ComparisonLabel: profile.Label,
		ComparisonTags:  profile.Tags,
	}
}
