// Package wfreview reviews workflow configuration documents.
//
// A review loads one JSON document describing workflow steps, form fields,
// a table schema, relationships and print settings, then writes a plain-text
// report with a structural validation summary:
//
//	srv, err := wfreview.New(wfreview.WithSourceURL("Untitled-1.json"))
//	if err != nil {
//		return err
//	}
//	err = srv.Review(ctx, os.Stdout)
//
// Review fails only when the document cannot be read or is not well-formed
// JSON; validation findings are part of the report.
package wfreview
