package response

import (
	"bytes"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"gymhub/shared/logger"
	"html/template"
	"net/http"
)

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Code}} {{.Status}}</title>
</head>
<body>
<main>
<h1>{{.Code}} {{.Status}}</h1>
<p>{{.Message}}</p>
</main>
</body>
</html>
`))

type statusView struct {
	Code    int
	Status  string
	Message string
}

// WithHTMLError renders a status page for the server-rendered surface.
func WithHTMLError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	var page bytes.Buffer

	if renderErr := statusPage.Execute(&page, statusView{Code: code, Status: http.StatusText(code), Message: failure.PublicMessage(err)}); renderErr != nil {
		logger.ErrorWithStack(renderErr)
		http.Error(writer, http.StatusText(code), code)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, writeErr := writer.Write(page.Bytes()); writeErr != nil {
		logger.ErrorWithStack(writeErr)
	}
}

// ErrorWriter writes err in the format of one surface.
type ErrorWriter func(http.ResponseWriter, error)
