// Package provinv builds CSV inventories of medical-provider profile
// pages. It fetches each profile URL, asks a language model to extract
// a fixed schema of provider fields from the page content, and writes
// the results as a spreadsheet-ready CSV plus a failure summary.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// openai/, sqlite/).
package provinv
