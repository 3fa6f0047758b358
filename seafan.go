package gmdh

// Browser is the browser to use for plotting.
var Browser = "firefox"
