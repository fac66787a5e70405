package report

type ReportServiceAPI interface {
	RosterExport(instituteID, format string) (contentType, filename string, out []byte, err error)
}

var _ ReportServiceAPI = (*ReportService)(nil)
