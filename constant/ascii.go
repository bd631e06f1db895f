package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
              __          __
   _______  __/ /_  ____  / /___ ___  __
  / ___/ / / / __ \/ __ \/ / __ '/ / / /
 (__  ) /_/ / /_/ / /_/ / / /_/ / /_/ /
/____/\__,_/_.___/ .___/_/\__,_/\__, /
                /_/            /____/`
