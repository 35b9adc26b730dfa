// Package rules provides the built-in ATS compatibility rules for atslint.
//
// # Rule Catalog
//
//   - ATS001: no-emoji - Emoji and pictographic symbols (CRITICAL)
//
//   - ATS002: no-tables - Markdown pipe tables and HTML tables (HIGH)
//
//   - ATS003: no-smart-punctuation - Curly quotes, dashes, and ellipses (MEDIUM)
//
//   - ATS004: no-all-caps - Whole lines written in capitals (LOW)
//
//   - ATS005: no-creative-titles - Informal job titles such as "ninja" (MEDIUM)
//
//   - ATS006: standard-dates - Seasonal and unparenthesized year ranges (HIGH)
//
//   - ATS007: no-hidden-text - HTML comments (CRITICAL)
//
//   - ATS008: no-keyword-stuffing - A keyword repeated on one line (LOW)
//
//   - ATS009: standard-section-headers - Level-2 headers outside the canonical set (LOW)
//
//   - ATS010: contact-format - Email, phone, and URL presentation
//
// Every rule is always enabled. Each finding's severity is fixed by the rule
// that produced it.
package rules
