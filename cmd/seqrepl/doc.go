/*
Command seqrepl evaluates sequence pipelines from the command line, a YAML
file or an interactive prompt.

	seqrepl 'naturals | filter odd | map * 3 | take 4'
	seqrepl -f pipelines.yaml
	seqrepl -max 20 -trace debug

Without arguments or named pipelines, seqrepl reads one pipeline per line. On a
terminal it offers line editing; otherwise lines are read from standard input
until EOF. Lines starting with a colon are commands:

	:help         list the known words
	:list         list the pipelines of the config file
	:run NAME     evaluate a named pipeline
	:max N        set the number of printed elements
	:quit         leave

See package lazyseq/pipeline for the expression syntax.
*/
package main
