package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"VCS_Link_Checker/internal/link-service/config"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/internal/link-service/verdict"
)

//go:generate mockgen -source=report_service.go -destination=../mocks/service/report_service.go

type DatasetReport struct {
	Name              string
	Title             string
	URL               string
	NumBrokenLinks    int
	BrokenResourceIDs []string
}

type OrganizationReport struct {
	Name           string
	Title          string
	NumBrokenLinks int
	Datasets       []DatasetReport
}

// EmailReport groups datasets by contact email. An empty Email is the bucket
// of datasets without any contact.
type EmailReport struct {
	Email          string
	NumBrokenLinks int
	Datasets       []DatasetReport
	MailtoLink     string
}

type ReportService interface {
	BrokenLinksByOrganization(ctx context.Context) ([]OrganizationReport, error)
	BrokenLinksByEmail(ctx context.Context) ([]EmailReport, error)
}

type reportService struct {
	resultRepository  repository.ResultRepository
	datasetRepository repository.DatasetRepository
	policy            verdict.Policy
	site              config.SiteConfig
	now               func() time.Time
}

func (s *reportService) BrokenLinksByOrganization(ctx context.Context) ([]OrganizationReport, error) {
	broken, err := s.brokenResourceIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReportService.BrokenLinksByOrganization: %w", err)
	}
	organizations, err := s.datasetRepository.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReportService.BrokenLinksByOrganization: %w", err)
	}

	reports := make([]OrganizationReport, 0, len(organizations))
	for _, org := range organizations {
		datasets, e := s.datasetRepository.ListDatasets(ctx, org.Name)
		if e != nil {
			return nil, fmt.Errorf("ReportService.BrokenLinksByOrganization: %w", e)
		}
		orgReport := OrganizationReport{
			Name:     org.Name,
			Title:    org.Title,
			Datasets: []DatasetReport{},
		}
		for _, dataset := range datasets {
			datasetReport, ok := s.datasetReport(dataset, broken)
			if !ok {
				continue
			}
			orgReport.NumBrokenLinks += datasetReport.NumBrokenLinks
			orgReport.Datasets = append(orgReport.Datasets, datasetReport)
		}
		sortDatasetReports(orgReport.Datasets)
		reports = append(reports, orgReport)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].NumBrokenLinks > reports[j].NumBrokenLinks
	})
	return reports, nil
}

func (s *reportService) BrokenLinksByEmail(ctx context.Context) ([]EmailReport, error) {
	broken, err := s.brokenResourceIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReportService.BrokenLinksByEmail: %w", err)
	}
	datasets, err := s.datasetRepository.ListDatasets(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("ReportService.BrokenLinksByEmail: %w", err)
	}

	var reports []EmailReport
	groupIndex := make(map[string]int)
	for _, dataset := range datasets {
		datasetReport, ok := s.datasetReport(dataset, broken)
		if !ok {
			continue
		}
		email := dataset.ContactEmail()
		i, exists := groupIndex[email]
		if !exists {
			i = len(reports)
			groupIndex[email] = i
			reports = append(reports, EmailReport{Email: email})
		}
		reports[i].NumBrokenLinks += datasetReport.NumBrokenLinks
		reports[i].Datasets = append(reports[i].Datasets, datasetReport)
	}

	for i := range reports {
		sortDatasetReports(reports[i].Datasets)
		reports[i].MailtoLink = s.mailtoLink(reports[i].Email, reports[i].Datasets)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].NumBrokenLinks > reports[j].NumBrokenLinks
	})
	if reports == nil {
		reports = []EmailReport{}
	}
	return reports, nil
}

func (s *reportService) brokenResourceIDs(ctx context.Context) (map[string]struct{}, error) {
	results, err := s.resultRepository.All(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	broken := make(map[string]struct{})
	for i := range results {
		if s.policy.IsBroken(&results[i], now) {
			broken[results[i].ResourceID] = struct{}{}
		}
	}
	return broken, nil
}

// datasetReport returns false when none of the dataset's resources is broken.
func (s *reportService) datasetReport(dataset model.Dataset, broken map[string]struct{}) (DatasetReport, bool) {
	var brokenIDs []string
	for _, resource := range dataset.Resources {
		if _, ok := broken[resource.ID]; ok {
			brokenIDs = append(brokenIDs, resource.ID)
		}
	}
	if len(brokenIDs) == 0 {
		return DatasetReport{}, false
	}
	title := dataset.Title
	if title == "" {
		title = dataset.Name
	}
	return DatasetReport{
		Name:              dataset.Name,
		Title:             title,
		URL:               s.datasetURL(dataset.Name),
		NumBrokenLinks:    len(brokenIDs),
		BrokenResourceIDs: brokenIDs,
	}, true
}

func (s *reportService) datasetURL(name string) string {
	return strings.TrimRight(s.site.URL, "/") + "/dataset/" + url.PathEscape(name)
}

func (s *reportService) mailtoLink(email string, datasets []DatasetReport) string {
	var subject, intro string
	if len(datasets) == 1 {
		subject = fmt.Sprintf("Broken links in your dataset on %s", s.site.Title)
		intro = fmt.Sprintf("Your dataset on %s has broken links:", s.site.Title)
	} else {
		subject = fmt.Sprintf("Broken links in your datasets on %s", s.site.Title)
		intro = fmt.Sprintf("%d of your datasets on %s have broken links:", len(datasets), s.site.Title)
	}

	var body strings.Builder
	body.WriteString("Hi,\n\n")
	body.WriteString(intro)
	body.WriteString("\n\n")
	for _, d := range datasets {
		fmt.Fprintf(&body, "%s: %s\n", d.Title, d.URL)
	}
	body.WriteString("\nThanks")

	return "mailto:" + url.PathEscape(email) +
		"?subject=" + escapeMailtoField(subject) +
		"&body=" + escapeMailtoField(body.String())
}

// escapeMailtoField percent-encodes spaces as %20, mail clients show "+" literally.
func escapeMailtoField(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func sortDatasetReports(reports []DatasetReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].NumBrokenLinks > reports[j].NumBrokenLinks
	})
}

func NewReportService(resultRepository repository.ResultRepository, datasetRepository repository.DatasetRepository, policy verdict.Policy, site config.SiteConfig) ReportService {
	return &reportService{
		resultRepository:  resultRepository,
		datasetRepository: datasetRepository,
		policy:            policy,
		site:              site,
		now:               func() time.Time { return time.Now().UTC() },
	}
}
