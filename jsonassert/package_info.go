// Package jsonassert reports semantic JSON inequality as a test failure.
//
// It is a thin layer over jsoncompare.Compare for use with testify-style test code:
//
//     func TestHandler(t *testing.T) {
//         body := callHandler()
//         jsonassert.AssertEqual(t, `{"items":[1,2],"ok":true}`, body)
//     }
//
// The two texts may differ in whitespace, object key order and array element order.
package jsonassert
