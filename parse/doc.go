// Package parse decodes Syrup text into IR nodes.
//
// # Usage
//
//	// Decode one value; trailing bytes are left unconsumed
//	node, n, err := parse.Decode([]byte(`<4'recd3"bob12+>`))
//	if err != nil {
//	    return err
//	}
//
//	// Decode consecutive values from a buffer
//	dec := parse.NewDecoder(data)
//	for {
//	    node, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// Decoding is all or nothing: on failure no node is returned and the
// cursor does not move.  Failures wrap one of ErrSyntax, ErrUnexpectedEnd,
// ErrMalformedInteger, ErrInvalidEncoding or ErrTooDeep, all of which wrap
// ErrDecode.
//
// # Related Packages
//
//   - github.com/signadot/go-syrup/ir - IR representation
//   - github.com/signadot/go-syrup/token - lexical classification
package parse
