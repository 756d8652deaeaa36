// Package stream turns XML documents into lazy sequences of structural
// events.
//
// An Event is one of four kinds: start, end, text or empty. Start and
// end events for a subtree appear in document order and nest properly;
// a self-closing tag is reported as a single empty event so consumers
// can tell "explicitly empty" from "empty because no text arrived".
// Character data is coalesced into one text event per contiguous run,
// with whitespace left untouched; trimming is a consumer concern.
//
// The decoder is pull-based and forward-only. It performs no look-ahead
// beyond the single token needed to close a text run, retains no yielded
// events, and keeps per-stream state proportional to the open-tag depth.
// Consumers stop iterating whenever they like; there is no cancel
// signal, and a partially consumed FileDecoder or Events sequence leaves
// no dangling file handle.
//
// # Example
//
//	dec, err := stream.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer dec.Close()
//	for {
//	    ev, err := dec.ReadEvent()  // Event{Index, Type, Value}
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err  // *token.SyntaxError or *stream.Error
//	    }
//	    ...
//	}
//
// Or, with automatic file handling:
//
//	for ev, err := range stream.Events(path) {
//	    if err != nil {
//	        return err
//	    }
//	    if ev.Index > 100 {
//	        break  // the file is closed on break too
//	    }
//	}
package stream
