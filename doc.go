// Package hdlwrap runs an HDL compiler like Verilator as a build action. The
// build system passes the paths it knows; hdlwrap maps them to the paths the
// tool can see, runs the tool once and tidies up its outputs:
//
//	hdlwrap --verilator=<bin> --src=<file>... --output=<dir>... \
//	        [--output_srcs=<dir>] [--output_hdrs=<dir>] [--capture_output] \
//	        -- <tool args>...
//
// Each tool argument after "--" gets every --src path replaced by its
// resolved path and every --output path by its normalized path. With
// --capture_output the tool's combined output is only shown when the tool
// fails or RULES_VERILOG_VERILATOR_DEBUG is set.
//
// After the tool succeeded, RULES_VERILOG_VERILATOR_LINT_OUTPUT is touched if
// set, and the files generated into each --output directory are sorted:
// sources (.cc, .cpp, .c) are copied to --output_srcs, headers (.h, .hpp,
// .hh) to --output_hdrs and everything is removed from the output directory.
//
// # Argument files
//
// If RULES_VERILOG_VERILATOR_ARGS_FILE is set, the command line is ignored.
// The arguments are read from that file, one per line, and --verilator and
// --src paths are looked up in the Bazel runfiles.
//
// # Exit codes
//
// hdlwrap exits with the tool's exit code, 128+n if the tool was killed by
// signal n, and 1 if hdlwrap itself failed.
package hdlwrap
