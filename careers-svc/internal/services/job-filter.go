package services

import (
	"strings"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
)

// RemoteLocation is the location value that selects remote jobs instead of
// matching on the location text. It is compared exactly.
const RemoteLocation = "Remote"

// FilterJobs keeps the jobs that match the search text and every set
// criterion, in their original order. With nothing set it returns jobs as is.
// Remoteness is the job's remote flag only; a job_type of "remote" without the
// flag does not count.
func FilterJobs(jobs []domain.Job, search string, c dto.JobCriteria) []domain.Job {
	if search == "" && c.IsZero() {
		return jobs
	}

	search = strings.ToLower(search)
	jobType := normalizeJobType(c.Type)
	location := strings.ToLower(c.Location)

	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if search != "" && !matchesSearch(job, search) {
			continue
		}
		if jobType != "" && normalizeJobType(job.JobType) != jobType {
			continue
		}
		if c.Location != "" {
			if c.Location == RemoteLocation {
				if !job.Remote {
					continue
				}
			} else if !strings.Contains(strings.ToLower(job.StringLocation()), location) {
				continue
			}
		}
		if c.Remote && !job.Remote {
			continue
		}
		if c.Category != "" && job.StringCategory() != c.Category {
			continue
		}
		out = append(out, job)
	}
	return out
}

// matchesSearch expects needle already lower-cased.
func matchesSearch(job domain.Job, needle string) bool {
	for _, field := range []string{job.Title, job.CompanyName(), job.Description, job.StringCategory()} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// normalizeJobType lets "Full Time", "full-time" and "FULL-TIME" compare equal.
func normalizeJobType(t string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(t)), "-", " ")
}
