// Package lib holds supporting modules that do not fit strictly into
// other layers, such as background job processing (Redis/Asynq).
package lib
