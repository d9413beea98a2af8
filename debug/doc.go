// Package debug holds environment driven debug switches.
//
//	ORAFILE_DEBUG_LOAD    log documents as they are decoded
//	ORAFILE_DEBUG_RENDER  log render calls
//	ORAFILE_DEBUG_SELECT  log selector decisions
package debug
