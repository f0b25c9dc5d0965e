// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package endpoints

import (
	"bytes"
	"net/http"
	"time"

	"github.com/densitylab/filmcurve/api/services"
	"github.com/densitylab/filmcurve/core/logger"
)

// How many chars of resp body to display in error logs
const bodyTextRespLogLength = 600

// responseWriterWithCopy - keeps a copy of the status and body written, so the
// middleware can log what actually went out
type responseWriterWithCopy struct {
	RealWriter http.ResponseWriter
	Body       *bytes.Buffer
	Status     int
}

func (w *responseWriterWithCopy) Header() http.Header {
	return w.RealWriter.Header()
}

func (w *responseWriterWithCopy) Write(b []byte) (int, error) {
	w.Body.Write(b)
	return w.RealWriter.Write(b)
}

func (w *responseWriterWithCopy) WriteHeader(statusCode int) {
	w.Status = statusCode
	w.RealWriter.WriteHeader(statusCode)
}

type LoggerMiddleware struct {
	*services.APIServices
}

// Middleware - logs each request at debug level, and failed requests with a
// response body snippet at error level
func (h *LoggerMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		w2 := &responseWriterWithCopy{RealWriter: w, Body: buf, Status: 0}

		start := time.Now()
		next.ServeHTTP(w2, r)
		duration := time.Since(start)

		hadError := w2.Status != 0 && w2.Status != http.StatusOK && w2.Status != http.StatusNotModified

		level := logger.LogDebug
		if hadError {
			level = logger.LogError
		}

		respBodyTxt := ""
		if hadError {
			respBodyTxt = buf.String()
			if len(respBodyTxt) > bodyTextRespLogLength {
				respBodyTxt = respBodyTxt[0:bodyTextRespLogLength] + "..."
			}
			respBodyTxt = ", response: " + respBodyTxt
		}

		h.Log.Printf(level, "Request %v %v, status=%v, took %vms%v", r.Method, r.URL, w2.Status, duration.Milliseconds(), respBodyTxt)
	})
}
