package store

import "tekfix_jobboard/internal/models"

type JobActionType string

const (
	ActionFetchJobsStart   JobActionType = "FETCH_JOBS_START"
	ActionFetchJobsSuccess JobActionType = "FETCH_JOBS_SUCCESS"
	ActionFetchJobsFailure JobActionType = "FETCH_JOBS_FAILURE"
	ActionAddJob           JobActionType = "ADD_JOB"
	ActionUpdateJob        JobActionType = "UPDATE_JOB"
	ActionDeleteJob        JobActionType = "DELETE_JOB"
	ActionSetSearchTerm    JobActionType = "SET_SEARCH_TERM"
	ActionSetLocation      JobActionType = "SET_LOCATION_FILTER"
	ActionSetType          JobActionType = "SET_TYPE_FILTER"
	ActionJobApplied       JobActionType = "JOB_APPLIED"
	ActionAppliedLoaded    JobActionType = "APPLIED_LOADED"
)

type JobAction struct {
	Type   JobActionType
	Jobs   []models.Job
	Job    *models.Job
	JobID  string
	Value  string
	JobIDs []string
}

// JobState - список вакансий в порядке вставки и три поля фильтра
type JobState struct {
	Jobs    []models.Job        `json:"jobs"`
	Loading bool                `json:"isLoading"`
	Filter  models.JobFilter    `json:"filter"`
	Applied map[string]struct{} `json:"-"`
}

// ReduceJobs - чистый переход состояния. Срезы и map копируются,
// поэтому предыдущее состояние у подписчиков остается прежним.
func ReduceJobs(state JobState, action JobAction) JobState {
	switch action.Type {
	case ActionFetchJobsStart:
		state.Loading = true
	case ActionFetchJobsSuccess:
		state.Jobs = cloneJobs(action.Jobs)
		state.Loading = false
	case ActionFetchJobsFailure:
		state.Loading = false
	case ActionAddJob:
		jobs := make([]models.Job, 0, len(state.Jobs)+1)
		jobs = append(jobs, *action.Job.Clone())
		state.Jobs = append(jobs, state.Jobs...)
	case ActionUpdateJob:
		jobs := cloneJobs(state.Jobs)
		for i := range jobs {
			if jobs[i].ID == action.Job.ID {
				jobs[i] = *action.Job.Clone()
			}
		}
		state.Jobs = jobs
	case ActionDeleteJob:
		jobs := make([]models.Job, 0, len(state.Jobs))
		for _, j := range state.Jobs {
			if j.ID != action.JobID {
				jobs = append(jobs, j)
			}
		}
		state.Jobs = jobs
	case ActionSetSearchTerm:
		state.Filter.Search = action.Value
	case ActionSetLocation:
		state.Filter.Location = action.Value
	case ActionSetType:
		state.Filter.Type = action.Value
	case ActionJobApplied:
		applied := cloneApplied(state.Applied)
		applied[action.JobID] = struct{}{}
		state.Applied = applied
	case ActionAppliedLoaded:
		applied := make(map[string]struct{}, len(action.JobIDs))
		for _, id := range action.JobIDs {
			applied[id] = struct{}{}
		}
		state.Applied = applied
	}
	return state
}

func cloneJobs(jobs []models.Job) []models.Job {
	if jobs == nil {
		return nil
	}
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	return out
}

func cloneApplied(src map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(src)+1)
	for k := range src {
		out[k] = struct{}{}
	}
	return out
}
