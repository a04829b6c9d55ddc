//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2022-24"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/e-gun/FeatureLab"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cC0 C2{file}C0    read the configuration from a C3.jsonC0, C3.yamlC0 or C3.ymlC0 file [C6defaultC0: C3{{.home}}{{.conffile}}C0]
   C1-clC0 C2{string}C0 cluster on C3featuresC0 or on the C3similarityC0 matrix [C6currentC0: C3{{.clsrc}}C0]
   C1-dbC0 C2{string}C0 database path or DSN [C6currentC0: C3{{.dsn}}C0]
   C1-drC0 C2{string}C0 database driver: C3sqliteC0, C3sqlite3C0, C3pgxC0, C3postgresC0, C3mysqlC0 [C6currentC0: C3{{.driver}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ll}}C0]
   C1-hC0           print this help information
   C1-itC0 C2{num}C0    word2vec training iterations [C6currentC0: C3{{.w2viter}}C0]
   C1-nC0 C2{num}C0     sample size [C6currentC0: C3{{.sample}}C0]
   C1-nwC0          skip the word embedding stage
   C1-pcC0          enable CPU profiling run
   C1-pjC0 C2{string}C0 2D projection: C3tsneC0 or C3pcaC0 [C6currentC0: C3{{.proj}}C0]
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-sdC0 C2{num}C0    sampling seed, or C3noneC0 [C6currentC0: C3{{.seed}}C0]
   C1-swC0          drop stop words before counting word terms (C3{{.stops}}C0 overrides the built-in list)
   C1-tpC0 C2{num}C0    number of topics [C6currentC0: C3{{.topics}}C0]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
`
)
