package workflow

// OutcomeKind classifies one repo's result in a start run
type OutcomeKind int

const (
	// OutcomeCreated means the branch was newly created and pushed
	OutcomeCreated OutcomeKind = iota
	// OutcomeReused means an existing local branch was re-pushed under --force
	OutcomeReused
	// OutcomeFailed means the repo's procedure aborted with an error
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeReused:
		return "reused"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// RepoOutcome is one repo's result: exactly one per selected repo per run
type RepoOutcome struct {
	Repo   string
	Kind   OutcomeKind
	Detail string
	Err    error
}

// Report collects per-repo outcomes in selection order
type Report struct {
	Outcomes []RepoOutcome
}

func (r *Report) add(o RepoOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failed reports whether any repo's outcome is OutcomeFailed. This is the
// sole success predicate: zero failed repos.
func (r *Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeFailed {
			return true
		}
	}
	return false
}
