// Package response defines the uniform shapes returned to API clients.
//
// Envelope wraps every payload, successful or not, in the same
// {success, code, message, data} structure. ProblemDetails (RFC 7807) is the
// structured error payload; NewProblem builds one from any error using the
// apperr taxonomy, exposing the raw error text only in development mode.
//
// # Usage
//
//	return c.JSON(response.Ok(names, "Buckets retrieved"))
//
//	p := response.NewProblem(err, response.ProblemOptions{
//	    Instance: c.Path(),
//	    TraceID:  rayID,
//	})
//	return c.Status(p.Status).JSON(response.Fail(p, "request failed", p.Status))
package response
