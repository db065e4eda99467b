// Package seoplatform provides a Go SDK for the SEO Intelligence Platform API.
//
// The SDK covers projects, keyword tracking, rankings, site audits and
// backlink monitoring, plus an optional realtime channel for push events.
//
// Basic usage:
//
//	client, err := seoplatform.NewClient("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	projects, err := client.Projects.List(ctx, nil)
package seoplatform

// Version is the SDK version.
const Version = "1.0.0"
