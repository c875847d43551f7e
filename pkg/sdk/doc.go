// Package surveyfront provides a Go client for the survey backend consumed by
// the surveyfront UI.
//
// The backend exposes two endpoints:
//   - POST /api/lookup  {"survey_id": "..."} -> JSON list of surveys or {"error": "..."}
//   - POST /api/export  {"survey_id": "..."} -> Word document draft
//
// # Usage
//
//	client, _ := surveyfront.New("http://localhost:5000",
//	    surveyfront.WithTimeout(30*time.Second),
//	)
//	res, _ := client.Lookup(ctx, "240101")
//	if !res.IsList {
//	    log.Println(res.Error)
//	}
//	dl, _ := client.Export(ctx, "240101")
//	defer dl.Body.Close()
//	_, _ = io.Copy(f, dl.Body)
//
// Lookup responses are classified by shape, not by HTTP status: any list is a
// list, anything else is a failure with an optional message.
package surveyfront
