// Package markup provides a small streaming HTML tokenizer for scraping.
//
// The tokenizer turns a page into a flat sequence of start-tag, end-tag,
// text and character-reference tokens in document order. It performs no
// validation and no nesting balance: every tag is an independent event and
// callers decide how to pair them up. Named entities are resolved against a
// fixed table and an unrecognized name is a hard error rather than being
// silently dropped, so a page using markup we do not understand fails loudly.
package markup
