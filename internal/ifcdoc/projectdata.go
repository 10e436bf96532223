package ifcdoc

// ProjectData mirrors the project, client and contractor property sets
// stored on the project record. All fields are free text owned by the
// surrounding application.
type ProjectData struct {
	ProjectName        string
	ProjectDescription string
	ProjectNumber      string
	ProjectLocation    string
	ProjectDate        string

	ClientName    string
	ClientAddress string
	ClientPostal  string
	ClientContact string
	ClientPhone   string
	ClientEmail   string

	ContractorName    string
	ContractorAddress string
	ContractorPostal  string
	ContractorPhone   string
	ContractorEmail   string
	ContractorKvK     string
}

// LoadProjectData reads the project-level property sets from the
// document. Missing sets simply leave fields empty.
func (d *Document) LoadProjectData() ProjectData {
	p := &d.Project
	get := func(set, key string) string { return getProperty(p.PropertySets, set, key) }
	return ProjectData{
		ProjectName:        p.Name,
		ProjectDescription: p.Description,
		ProjectNumber:      get(PsetProjectInfo, "ProjectNumber"),
		ProjectLocation:    get(PsetProjectInfo, "ProjectLocation"),
		ProjectDate:        get(PsetProjectInfo, "ProjectDate"),

		ClientName:    get(PsetClientInfo, "ClientName"),
		ClientAddress: get(PsetClientInfo, "ClientAddress"),
		ClientPostal:  get(PsetClientInfo, "ClientPostal"),
		ClientContact: get(PsetClientInfo, "ClientContact"),
		ClientPhone:   get(PsetClientInfo, "ClientPhone"),
		ClientEmail:   get(PsetClientInfo, "ClientEmail"),

		ContractorName:    get(PsetContractorInfo, "ContractorName"),
		ContractorAddress: get(PsetContractorInfo, "ContractorAddress"),
		ContractorPostal:  get(PsetContractorInfo, "ContractorPostal"),
		ContractorPhone:   get(PsetContractorInfo, "ContractorPhone"),
		ContractorEmail:   get(PsetContractorInfo, "ContractorEmail"),
		ContractorKvK:     get(PsetContractorInfo, "ContractorKvK"),
	}
}

// SaveProjectData writes the project-level property sets back onto the
// document.
func (d *Document) SaveProjectData(data ProjectData) {
	p := &d.Project
	if data.ProjectName != "" {
		p.Name = data.ProjectName
	}
	if data.ProjectDescription != "" {
		p.Description = data.ProjectDescription
	}
	set := func(setName, key, value string) {
		p.PropertySets = setProperty(p.PropertySets, setName, key, value)
	}
	set(PsetProjectInfo, "ProjectNumber", data.ProjectNumber)
	set(PsetProjectInfo, "ProjectLocation", data.ProjectLocation)
	set(PsetProjectInfo, "ProjectDate", data.ProjectDate)

	set(PsetClientInfo, "ClientName", data.ClientName)
	set(PsetClientInfo, "ClientAddress", data.ClientAddress)
	set(PsetClientInfo, "ClientPostal", data.ClientPostal)
	set(PsetClientInfo, "ClientContact", data.ClientContact)
	set(PsetClientInfo, "ClientPhone", data.ClientPhone)
	set(PsetClientInfo, "ClientEmail", data.ClientEmail)

	set(PsetContractorInfo, "ContractorName", data.ContractorName)
	set(PsetContractorInfo, "ContractorAddress", data.ContractorAddress)
	set(PsetContractorInfo, "ContractorPostal", data.ContractorPostal)
	set(PsetContractorInfo, "ContractorPhone", data.ContractorPhone)
	set(PsetContractorInfo, "ContractorEmail", data.ContractorEmail)
	set(PsetContractorInfo, "ContractorKvK", data.ContractorKvK)
}
