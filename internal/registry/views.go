package registry

import (
	"math"
	"strings"

	"github.com/focusin/hub/internal/entity"
)

// FilterCriteria narrows the lead list. Empty or "all" means "any" for each
// field; the three criteria are AND-ed together.
type FilterCriteria struct {
	Search  string
	Status  string
	Product string
}

const sentinelAll = "all"

func (c FilterCriteria) matches(lead *entity.Lead) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(lead.Name), term) &&
			!strings.Contains(strings.ToLower(lead.Email), term) &&
			!strings.Contains(strings.ToLower(lead.Institution), term) {
			return false
		}
	}
	if c.Status != "" && c.Status != sentinelAll && string(lead.Status) != c.Status {
		return false
	}
	if c.Product != "" && c.Product != sentinelAll && string(lead.Product) != c.Product {
		return false
	}
	return true
}

// Filter returns matching leads in registry order. Pure view: the returned
// clones never alias registry state.
func (r *Registry) Filter(criteria FilterCriteria) []*entity.Lead {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []*entity.Lead{}
	for _, lead := range r.leads {
		if criteria.matches(lead) {
			matched = append(matched, lead.Clone())
		}
	}
	return matched
}

type Stats struct {
	Total           int                       `json:"total"`
	ByStatus        map[entity.LeadStatus]int `json:"byStatus"`
	Pending         int                       `json:"pending"`
	ProgressPercent int                       `json:"progressPercent"`
}

// Stats computes the derived counts. Progress is the share of leads moved
// past pending, rounded to a whole percent; 0 for an empty registry.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := Stats{
		Total:    len(r.leads),
		ByStatus: make(map[entity.LeadStatus]int, len(entity.AllStatuses)),
	}
	for _, status := range entity.AllStatuses {
		stats.ByStatus[status] = 0
	}
	for _, lead := range r.leads {
		stats.ByStatus[lead.Status]++
	}
	stats.Pending = stats.ByStatus[entity.StatusPending]

	if stats.Total > 0 {
		completed := stats.Total - stats.Pending
		stats.ProgressPercent = int(math.Round(float64(completed) / float64(stats.Total) * 100))
	}
	return stats
}
