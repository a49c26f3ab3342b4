package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to an optional limit. Diagnostics over the
// limit are counted but not stored.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag создаёт Bag с лимитом max; max <= 0 снимает ограничение.
func NewBag(max int) *Bag {
	size := 64
	if max > 0 && max < size {
		size = max
	}
	return &Bag{items: make([]Diagnostic, 0, size), max: max}
}

// Add сохраняет d, если лимит не исчерпан. false — диагностика отброшена.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) full() bool {
	return b.max > 0 && len(b.items) >= b.max
}

func (b *Bag) Cap() int { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// Dropped reports how many diagnostics were refused because of the limit.
func (b *Bag) Dropped() int { return b.dropped }

// Items возвращает внутренний срез; вызывающий не должен его менять.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool { return b.atLeast(SevError) }

func (b *Bag) HasWarnings() bool { return b.atLeast(SevWarning) }

func (b *Bag) atLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

// Merge дописывает диагностики other. Лимит растёт, чтобы вместить обе сумки.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); b.max > 0 && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders by file and span; at equal spans errors come before warnings,
// then codes ascend. The sort is stable.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup оставляет первую диагностику для каждой пары код+span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span [3]uint32
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, [3]uint32{uint32(d.Primary.File), d.Primary.Start, d.Primary.End}}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
