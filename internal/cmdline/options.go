// Package cmdline splits ffmpeg-style command lines into per-file option
// groups and records the splitting decisions so they can be replayed as
// literal source text.
package cmdline

import "strings"

// Flags describes how an option is parsed and where it applies.
type Flags uint32

const (
	// HasArg means the option consumes the following argument.
	HasArg Flags = 1 << iota
	// FlagBool marks boolean options, which also accept the -nofoo form.
	FlagBool
	// FlagExpert marks options hidden from basic help.
	FlagExpert
	// FlagString marks string-valued options.
	FlagString
	// FlagVideo marks video-only options.
	FlagVideo
	// FlagAudio marks audio-only options.
	FlagAudio
	// FlagSubtitle marks subtitle-only options.
	FlagSubtitle
	// FlagInt marks integer-valued options.
	FlagInt
	// FlagInt64 marks 64-bit integer-valued options.
	FlagInt64
	// FlagFloat marks float-valued options.
	FlagFloat
	// FlagTime marks duration-valued options.
	FlagTime
	// FlagExit marks options that end the run (help, version); their
	// argument is optional.
	FlagExit
	// FlagPerFile marks options that attach to the file group being built
	// rather than to the global group.
	FlagPerFile
	// FlagSpec marks options that accept a :stream specifier suffix.
	FlagSpec
	// FlagOffset marks options whose value lands in a context struct field
	// rather than going through a callback. No table entry sets it yet.
	FlagOffset
	// FlagInput marks input-file options.
	FlagInput
	// FlagOutput marks output-file options.
	FlagOutput
)

// OptionDef describes one recognized command line option.
type OptionDef struct {
	Name    string
	Flags   Flags
	Help    string
	ArgName string
}

// GroupDef describes a kind of option group and the separator that closes it.
type GroupDef struct {
	Name string
	// Sep is the option name whose occurrence finishes a group of this
	// kind. Empty means a bare (non-option) argument finishes it.
	Sep string
}

// Group indexes into Groups.
const (
	GroupOutFile = 0
	GroupInFile  = 1
)

// Groups are the per-file group kinds, in the order the generated text
// refers to them by index.
var Groups = []GroupDef{
	{Name: "output url"},
	{Name: "input url", Sep: "i"},
}

// Options is the recognized option table. It covers the common ffmpeg
// surface; unrecognized -key value pairs fall through as default options.
var Options = []OptionDef{
	{Name: "f", Flags: HasArg | FlagString | FlagPerFile, Help: "force format", ArgName: "fmt"},
	{Name: "y", Flags: FlagBool, Help: "overwrite output files"},
	{Name: "n", Flags: FlagBool, Help: "never overwrite output files"},
	{Name: "t", Flags: HasArg | FlagTime | FlagPerFile, Help: "record or transcode \"duration\" seconds of audio/video", ArgName: "duration"},
	{Name: "to", Flags: HasArg | FlagTime | FlagPerFile, Help: "record or transcode stop time", ArgName: "time_stop"},
	{Name: "ss", Flags: HasArg | FlagTime | FlagPerFile, Help: "set the start time offset", ArgName: "time_off"},
	{Name: "sseof", Flags: HasArg | FlagTime | FlagPerFile | FlagInput, Help: "set the start time offset relative to EOF", ArgName: "time_off"},
	{Name: "fs", Flags: HasArg | FlagInt64 | FlagPerFile, Help: "set the limit file size in bytes", ArgName: "limit_size"},
	{Name: "c", Flags: HasArg | FlagString | FlagSpec | FlagPerFile, Help: "codec name", ArgName: "codec"},
	{Name: "codec", Flags: HasArg | FlagString | FlagSpec | FlagPerFile, Help: "codec name", ArgName: "codec"},
	{Name: "map", Flags: HasArg | FlagExpert | FlagPerFile | FlagOutput, Help: "set input stream mapping", ArgName: "[-]input_file_id[:stream_specifier][,sync_file_id[:stream_specifier]]"},
	{Name: "map_metadata", Flags: HasArg | FlagString | FlagSpec | FlagPerFile | FlagOutput, Help: "set metadata information of outfile from infile", ArgName: "outfile[,metadata]:infile[,metadata]"},
	{Name: "metadata", Flags: HasArg | FlagString | FlagSpec | FlagPerFile | FlagOutput, Help: "add metadata", ArgName: "string=string"},
	{Name: "b", Flags: HasArg | FlagSpec | FlagPerFile | FlagOutput, Help: "bitrate (please use -b:a or -b:v)", ArgName: "bitrate"},
	{Name: "r", Flags: HasArg | FlagString | FlagSpec | FlagPerFile, Help: "set frame rate (Hz value, fraction or abbreviation)", ArgName: "rate"},
	{Name: "s", Flags: HasArg | FlagString | FlagSpec | FlagPerFile, Help: "set frame size (WxH or abbreviation)", ArgName: "size"},
	{Name: "aspect", Flags: HasArg | FlagString | FlagSpec | FlagPerFile | FlagOutput, Help: "set aspect ratio (4:3, 16:9 or 1.3333, 1.7777)", ArgName: "aspect"},
	{Name: "pix_fmt", Flags: HasArg | FlagExpert | FlagString | FlagSpec | FlagPerFile, Help: "set pixel format", ArgName: "format"},
	{Name: "vn", Flags: FlagBool | FlagPerFile, Help: "disable video"},
	{Name: "an", Flags: FlagBool | FlagPerFile, Help: "disable audio"},
	{Name: "sn", Flags: FlagBool | FlagPerFile, Help: "disable subtitle"},
	{Name: "dn", Flags: FlagBool | FlagPerFile, Help: "disable data"},
	{Name: "ar", Flags: HasArg | FlagInt | FlagSpec | FlagPerFile, Help: "set audio sampling rate (in Hz)", ArgName: "rate"},
	{Name: "ac", Flags: HasArg | FlagInt | FlagSpec | FlagPerFile, Help: "set number of audio channels", ArgName: "channels"},
	{Name: "frames", Flags: HasArg | FlagInt64 | FlagSpec | FlagPerFile | FlagOutput, Help: "set the number of frames to output", ArgName: "number"},
	{Name: "filter", Flags: HasArg | FlagString | FlagSpec | FlagPerFile | FlagOutput, Help: "set stream filtergraph", ArgName: "filter_graph"},
	{Name: "vf", Flags: HasArg | FlagString | FlagVideo | FlagPerFile | FlagOutput, Help: "set video filters", ArgName: "filter_graph"},
	{Name: "af", Flags: HasArg | FlagString | FlagAudio | FlagPerFile | FlagOutput, Help: "set audio filters", ArgName: "filter_graph"},
	{Name: "filter_complex", Flags: HasArg | FlagString | FlagExpert, Help: "create a complex filtergraph", ArgName: "graph_description"},
	{Name: "loglevel", Flags: HasArg, Help: "set logging level", ArgName: "loglevel"},
	{Name: "v", Flags: HasArg, Help: "set logging level", ArgName: "loglevel"},
	{Name: "h", Flags: FlagExit, Help: "show help", ArgName: "topic"},
	{Name: "help", Flags: FlagExit, Help: "show help", ArgName: "topic"},
	{Name: "version", Flags: FlagExit, Help: "show version"},
}

// FindOption looks up an option by name, ignoring any :stream specifier
// suffix (e.g. "c:v" matches "c").
func FindOption(name string) *OptionDef {
	name, _, _ = strings.Cut(name, ":")
	for i := range Options {
		if Options[i].Name == name {
			return &Options[i]
		}
	}
	return nil
}

// filterKeys are the options whose values are filtergraph expressions.
var filterKeys = map[string]bool{
	"vf":             true,
	"af":             true,
	"filter_complex": true,
}

// IsFilterKey reports whether the named option carries a filtergraph
// expression.
func IsFilterKey(name string) bool {
	return filterKeys[name]
}
