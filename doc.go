// Package hermes extracts design metadata (geometry, styles, hierarchy, layout
// structure and an optional screenshot) from a selection of design-canvas nodes and
// serializes it as JSON, markdown or tagged markup for document-generation and
// language-model pipelines.
//
// The CLI lives in cmd/hermes; this root package exposes the same pipeline as a Go
// API so that a host integration can embed it.
//
// # Quick start
//
//	doc, err := design.LoadDocumentFile("design.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	selection, err := doc.ResolveSelection()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exporter := hermes.New(host, nil)
//	result, err := exporter.Export(ctx, selection, hermes.DefaultOptions())
//	if err != nil {
//	    log.Fatal(hermes.ErrorMessage(err))
//	}
//	fmt.Println(result.Output)
//
// # Hosts
//
// Screenshots are rendered by a [design.Host]. The imager package provides one backed
// by the Figma REST API. Without a host, or when rendering fails, the screenshot of a
// node is an empty string and the export carries on.
//
// # Messages
//
// Front-ends that talk in messages can pass a [Request] to [Exporter.Handle] and
// relay the returned [Response]: either the serialized output or a human-readable
// error.
//
// # Logging
//
// Pass a [Logger] implementation to [New] to receive progress messages and
// screenshot failures. A nil Logger silences all output.
package hermes
