package model

// Head describes the commit the coverage was produced for.
type Head struct {
	ID             string `json:"id"`
	AuthorName     string `json:"author_name"`
	AuthorEmail    string `json:"author_email"`
	CommitterName  string `json:"committer_name"`
	CommitterEmail string `json:"committer_email"`
	Message        string `json:"message"`
}

// Remote is a configured git remote.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GitInfo is the repository metadata attached to a job.
type GitInfo struct {
	Head    Head     `json:"head"`
	Branch  string   `json:"branch"`
	Remotes []Remote `json:"remotes"`
}

// ServiceInfo describes the CI service running the job.
type ServiceInfo struct {
	Name      string
	RepoName  string
	Number    string
	JobID     string
	JobNumber string
	PR        string
	Branch    string
	BuildURL  string
}

// Options are the Coveralls specific settings read from the environment.
type Options struct {
	RepoToken string
	Parallel  *bool // nil when COVERALLS_PARALLEL is unset
	FlagName  string
}

// Request is the job payload uploaded to Coveralls.
type Request struct {
	RepoToken          string         `json:"repo_token"`
	ServiceName        string         `json:"service_name"`
	RepoName           string         `json:"repo_name,omitempty"`
	ServiceNumber      string         `json:"service_number,omitempty"`
	ServiceJobID       string         `json:"service_job_id,omitempty"`
	ServiceJobNumber   string         `json:"service_job_number,omitempty"`
	ServicePullRequest string         `json:"service_pull_request,omitempty"`
	ServiceBranch      string         `json:"service_branch,omitempty"`
	ServiceBuildURL    string         `json:"service_build_url,omitempty"`
	Parallel           *bool          `json:"parallel,omitempty"`
	FlagName           string         `json:"flag_name,omitempty"`
	Git                *GitInfo       `json:"git,omitempty"`
	SourceFiles        []SourceReport `json:"source_files"`
}

// NewRequest assembles a job payload from its parts.
func NewRequest(options Options, service ServiceInfo, git *GitInfo, sources []SourceReport) Request {
	return Request{
		RepoToken:          options.RepoToken,
		ServiceName:        service.Name,
		RepoName:           service.RepoName,
		ServiceNumber:      service.Number,
		ServiceJobID:       service.JobID,
		ServiceJobNumber:   service.JobNumber,
		ServicePullRequest: service.PR,
		ServiceBranch:      service.Branch,
		ServiceBuildURL:    service.BuildURL,
		Parallel:           options.Parallel,
		FlagName:           options.FlagName,
		Git:                git,
		SourceFiles:        sources,
	}
}
