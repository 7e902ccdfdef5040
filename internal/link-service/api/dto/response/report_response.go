package response

type DatasetReportResponse struct {
	Name                     string   `json:"name"`
	Title                    string   `json:"title"`
	URL                      string   `json:"url"`
	NumBrokenLinks           int      `json:"num_broken_links"`
	ResourcesWithBrokenLinks []string `json:"resources_with_broken_links"`
}

type OrganizationReportResponse struct {
	Name                    string                  `json:"name"`
	Title                   string                  `json:"title"`
	NumBrokenLinks          int                     `json:"num_broken_links"`
	DatasetsWithBrokenLinks []DatasetReportResponse `json:"datasets_with_broken_links"`
}

// EmailReportResponse has a null email for datasets without a contact.
type EmailReportResponse struct {
	Email                   *string                 `json:"email"`
	NumBrokenLinks          int                     `json:"num_broken_links"`
	DatasetsWithBrokenLinks []DatasetReportResponse `json:"datasets_with_broken_links"`
	MailtoLink              string                  `json:"mailto_link"`
}
