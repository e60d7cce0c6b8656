// Package bootstrap prepares the server environment and hands the process over to it.
//
// It reads the options document mounted by the add-on host, resolves each setting with
// the priority options file > existing environment > default, exports LOG_LEVEL,
// APP_TIMEZONE, TZ and FORWARDED_ALLOW_IPS, and then replaces the current process with
// the server (optionally through su-exec to drop privileges). Replacing rather than
// spawning keeps the server as the process that receives termination signals.
//
// # Options Document
//
//	{
//	  "log_level": "info",
//	  "timezone": "Europe/Berlin",
//	  "forwarded_allow_ips": "172.30.32.2"
//	}
package bootstrap
