//go:build js && wasm

package platform

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"syscall/js"

	"github.com/chainkit/dapp-utils/internal/util"
)

// getRandomValues rejects requests above 64 KiB per call, so larger
// requests are filled in chunks.
const maxEntropyChunk = 65536

// detect probes the JS global once. A runtime with a browser crypto object
// gets the browser binding; anything else (e.g. a stripped-down embedder)
// falls back to the host primitives, which remain cryptographically secure
// under Wasm.
func detect() Capabilities {
	if js.Global().Get("crypto").Truthy() {
		return browserCapabilities{}
	}
	return hostCapabilities{}
}

// browserCapabilities implements Capabilities on top of the Web Crypto API.
type browserCapabilities struct{}

func (browserCapabilities) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("byte count must be non-negative, got %d", n)
	}

	crypto := js.Global().Get("crypto")
	if !crypto.Get("getRandomValues").Truthy() {
		return hostCapabilities{}.RandomBytes(n)
	}

	out := make([]byte, n)
	for off := 0; off < n; off += maxEntropyChunk {
		end := off + maxEntropyChunk
		if end > n {
			end = n
		}
		arr := js.Global().Get("Uint8Array").New(end - off)
		crypto.Call("getRandomValues", arr)
		js.CopyBytesToGo(out[off:end], arr)
	}
	return out, nil
}

func (browserCapabilities) SHA256Hex(ctx context.Context, data string) (string, error) {
	subtle := js.Global().Get("crypto").Get("subtle")
	if !subtle.Truthy() {
		// SubtleCrypto is gated behind secure contexts; the standard
		// library digest produces identical bytes.
		sum := sha256.Sum256([]byte(data))
		return hex.EncodeToString(sum[:]), nil
	}

	buf := []byte(data)
	arr := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(arr, buf)

	type digestResult struct {
		sum []byte
		err error
	}
	// Buffered so a settlement after ctx cancellation never blocks the
	// event loop.
	results := make(chan digestResult, 1)

	// The callbacks release themselves (and each other) when the promise
	// settles. Releasing them on function exit instead would leave the
	// pending promise pointing at freed js.Funcs after a ctx cancellation,
	// and its eventual settlement would be a fatal runtime error.
	var onResolve, onReject js.Func
	onResolve = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer onResolve.Release()
		defer onReject.Release()
		view := js.Global().Get("Uint8Array").New(args[0])
		sum := make([]byte, view.Get("length").Int())
		js.CopyBytesToGo(sum, view)
		results <- digestResult{sum: sum}
		return nil
	})
	onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer onReject.Release()
		defer onResolve.Release()
		results <- digestResult{err: fmt.Errorf("subtle digest rejected: %s", args[0].Call("toString").String())}
		return nil
	})

	subtle.Call("digest", "SHA-256", arr).Call("then", onResolve, onReject)

	select {
	case res := <-results:
		if res.err != nil {
			return "", res.err
		}
		return hex.EncodeToString(res.sum), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SecureContext mirrors the browser's own trust classification: the
// isSecureContext flag when the page reports one, otherwise the active
// protocol and hostname. Loopback hostnames are trusted to keep local
// development working over plain HTTP. This is a heuristic trust boundary,
// not a cryptographic guarantee.
func (browserCapabilities) SecureContext() bool {
	win := js.Global().Get("window")
	if !win.Truthy() {
		// No browser-like global (e.g. a worker without window);
		// treat as a trusted embedder.
		return true
	}

	if win.Get("isSecureContext").Truthy() {
		return true
	}

	loc := win.Get("location")
	if !loc.Truthy() {
		return false
	}
	if loc.Get("protocol").String() == "https:" {
		return true
	}
	return util.IsLoopbackHostname(loc.Get("hostname").String())
}
