package handler

import (
	"bytes"
	"sync"
)

// Response bodies are small JSON documents, so a modest initial capacity
// avoids most buffer growth.
const responseBufferSize = 512

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf before pooling it. Callers must not touch buf
// afterwards.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
